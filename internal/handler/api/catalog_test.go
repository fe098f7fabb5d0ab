//go:build unit

package api_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/dipakpardeshi85-blip/car-rental/internal/handler/api"
	"github.com/dipakpardeshi85-blip/car-rental/internal/usecase/queries"
	"github.com/dipakpardeshi85-blip/car-rental/tests/common/builder"
	"github.com/dipakpardeshi85-blip/car-rental/tests/common/httptest"
	queriesmock "github.com/dipakpardeshi85-blip/car-rental/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CatalogHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockCatalogQueries
	handler     *api.CatalogHandler
}

func (s *CatalogHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockCatalogQueries(s.mockCtrl)
	s.handler = api.NewCatalogHandler(s.mockQueries)

	s.router.GET("/locations", s.handler.ListLocations)
	s.router.GET("/cars", s.handler.ListCars)
	s.router.GET("/cars/:id", s.handler.GetCar)
}

func (s *CatalogHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCatalogHandlerSuite(t *testing.T) {
	suite.Run(t, new(CatalogHandlerTestSuite))
}

func (s *CatalogHandlerTestSuite) TestListCars() {
	s.Run("success: default filter keeps only available cars", func() {
		item := builder.NewCarBuilder().BuildListItem()
		s.mockQueries.EXPECT().ListCars(gomock.Any(), queries.CarFilter{AvailableOnly: true}).
			Return([]*queries.CarListItem{item}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cars", nil, "")

		var response []queries.CarListItem
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 1)
		s.Equal(item.Name, response[0].Name)
	})

	s.Run("success: filter params are forwarded", func() {
		s.mockQueries.EXPECT().ListCars(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, filter queries.CarFilter) ([]*queries.CarListItem, error) {
				s.Require().NotNil(filter.CarType)
				s.Equal("suv", *filter.CarType)
				s.Require().NotNil(filter.MaxPriceCents)
				s.Equal(int64(8000), *filter.MaxPriceCents)
				s.False(filter.AvailableOnly)
				return nil, nil
			}).Times(1)

		url := "/cars?car_type=suv&max_price_cents=8000&available=false"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 400 on malformed price", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cars?min_price_cents=cheap", nil, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *CatalogHandlerTestSuite) TestGetCar() {
	carID := uuid.New()
	url := fmt.Sprintf("/cars/%s", carID)

	s.Run("success", func() {
		item := builder.NewCarBuilder().BuildListItem()
		s.mockQueries.EXPECT().GetCar(gomock.Any(), carID).
			Return(&queries.CarView{CarListItem: *item, LocationAddress: "1 Main St"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response queries.CarView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("1 Main St", response.LocationAddress)
	})

	s.Run("error: 404 on unknown car", func() {
		s.mockQueries.EXPECT().GetCar(gomock.Any(), carID).
			Return(nil, queries.ErrCarNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		s.Equal(http.StatusNotFound, rec.Code)
	})
}
