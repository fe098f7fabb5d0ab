//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/dipakpardeshi85-blip/car-rental/internal/handler/api"
	resdto "github.com/dipakpardeshi85-blip/car-rental/internal/handler/dto/response"
	"github.com/dipakpardeshi85-blip/car-rental/internal/usecase/commands"
	"github.com/dipakpardeshi85-blip/car-rental/tests/common/builder"
	"github.com/dipakpardeshi85-blip/car-rental/tests/common/httptest"
	"github.com/dipakpardeshi85-blip/car-rental/tests/common/testutil"
	commandsmock "github.com/dipakpardeshi85-blip/car-rental/tests/mock/commands"
	queriesmock "github.com/dipakpardeshi85-blip/car-rental/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	mockQueries  *queriesmock.MockUserQueries
	handler      *api.AuthHandler
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockUserQueries(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/auth/register", s.handler.Register)
	s.router.POST("/auth/login", s.handler.Login)
	s.router.GET("/auth/me", func(c *gin.Context) {
		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			c.Set("user_id", uuid.New())
		}
		s.handler.Me(c)
	})
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) TestRegister() {
	url := "/auth/register"
	reqBody := builder.NewUserBuilder().BuildRegisterDTO()

	s.Run("success: returns 201 Created with token", func() {
		returnUser := builder.NewUserBuilder().BuildReadModel()
		s.mockCommands.EXPECT().Register(gomock.Any(), reqBody).
			Return(&commands.AuthResult{Token: "test-jwt-token", User: returnUser}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.AuthResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("test-jwt-token", response.AccessToken)
		s.Equal(returnUser.Email, response.User.Email)
	})

	s.Run("error: 409 Conflict on duplicate email", func() {
		s.mockCommands.EXPECT().Register(gomock.Any(), reqBody).
			Return(nil, commands.ErrEmailTaken).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusConflict, rec.Code)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "invalid email", mutate: testutil.Field("email", "invalid-email")},
			{name: "short password", mutate: testutil.Field("password", strings.Repeat("a", 7))},
			{name: "missing full_name", mutate: testutil.Field("full_name", nil)},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				s.Equal(http.StatusBadRequest, rec.Code)
			})
		}
	})
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"
	reqBody := builder.NewUserBuilder().BuildLoginDTO()

	s.Run("success: returns 200 OK", func() {
		returnUser := builder.NewUserBuilder().BuildReadModel()
		s.mockCommands.EXPECT().Login(gomock.Any(), reqBody).
			Return(&commands.AuthResult{Token: "test-jwt-token", User: returnUser}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.AuthResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(returnUser.Email, response.User.Email)
	})

	s.Run("error: 401 Unauthorized on bad credentials", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), reqBody).
			Return(nil, commands.ErrInvalidCredentials).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

func (s *AuthHandlerTestSuite) TestMe() {
	s.Run("success: returns current user", func() {
		returnUser := builder.NewUserBuilder().BuildReadModel()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any()).
			Return(returnUser, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, "some-token")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 500 when auth context is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, "")
		s.Equal(http.StatusInternalServerError, rec.Code)
	})
}
