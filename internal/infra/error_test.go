//go:build unit

package infra_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/dipakpardeshi85-blip/car-rental/internal/infra"
	"github.com/dipakpardeshi85-blip/car-rental/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapRepoErrClassification(t *testing.T) {
	cases := []struct {
		name string
		code string
		kind infra.RepositoryErrorKind
	}{
		{name: "unique violation", code: "23505", kind: infra.KindDuplicateKey},
		{name: "foreign key violation", code: "23503", kind: infra.KindForeignKeyViolated},
		{name: "exclusion violation", code: "23P01", kind: infra.KindConflict},
		{name: "anything else", code: "57014", kind: infra.KindDBFailure},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := infra.WrapRepoErr("insert failed", &pgconn.PgError{Code: tc.code})
			assert.True(t, infra.IsKind(err, tc.kind))
		})
	}

	t.Run("explicit kind wins over classification", func(t *testing.T) {
		err := infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		assert.False(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestWrapRepoErrLogsStorageFailure(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	err := infra.WrapRepoErr("failed to insert booking", errs.New("connection reset"))
	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))

	out := buf.String()
	assert.Contains(t, out, "Repository error: failed to insert booking")
	assert.Contains(t, out, string(infra.KindDBFailure))
	assert.Contains(t, out, "connection reset")
}
