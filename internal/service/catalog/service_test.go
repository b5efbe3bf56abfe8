package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/questarium/QST-ScheduleService/internal/domain"
	catalogClient "github.com/questarium/QST-ScheduleService/internal/integrations/catalog"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type stubClient struct {
	adventures []domain.Adventure
	listErr    error
	getErr     error
}

func (s *stubClient) ListAdventuresWithGracefulDegradation(ctx context.Context) ([]domain.Adventure, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.adventures, nil
}

func (s *stubClient) GetAdventureWithGracefulDegradation(ctx context.Context, adventureID string) (*domain.Adventure, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	for i := range s.adventures {
		if s.adventures[i].ID == adventureID {
			return &s.adventures[i], nil
		}
	}
	return nil, catalogClient.ErrAdventureNotFound
}

func TestListAdventures(t *testing.T) {
	t.Run("returns catalog adventures", func(t *testing.T) {
		svc := NewService(&stubClient{adventures: []domain.Adventure{
			{ID: "adv-1", Title: "Тени Вестероса"},
		}}, nopLogger{})

		adventures, err := svc.ListAdventures(context.Background())
		require.NoError(t, err)
		require.Len(t, adventures, 1)
		assert.Equal(t, "adv-1", adventures[0].ID)
	})

	t.Run("degraded catalog yields empty list", func(t *testing.T) {
		svc := NewService(&stubClient{listErr: catalogClient.ErrServiceDegraded}, nopLogger{})

		adventures, err := svc.ListAdventures(context.Background())
		require.NoError(t, err)
		assert.Empty(t, adventures)
	})

	t.Run("other client errors are internal", func(t *testing.T) {
		svc := NewService(&stubClient{listErr: errors.New("boom")}, nopLogger{})

		_, err := svc.ListAdventures(context.Background())
		assert.ErrorIs(t, err, ErrInternal)
	})
}

func TestGetAdventureByID(t *testing.T) {
	client := &stubClient{adventures: []domain.Adventure{
		{ID: "adv-1", Title: "Тени Вестероса"},
	}}
	svc := NewService(client, nopLogger{})

	t.Run("found", func(t *testing.T) {
		adv, err := svc.GetAdventureByID(context.Background(), "adv-1")
		require.NoError(t, err)
		assert.Equal(t, "Тени Вестероса", adv.Title)
	})

	t.Run("unknown adventure", func(t *testing.T) {
		_, err := svc.GetAdventureByID(context.Background(), "adv-404")
		assert.ErrorIs(t, err, ErrAdventureNotFound)
	})

	t.Run("degraded catalog reads as not found", func(t *testing.T) {
		svc := NewService(&stubClient{getErr: catalogClient.ErrServiceDegraded}, nopLogger{})

		_, err := svc.GetAdventureByID(context.Background(), "adv-1")
		assert.ErrorIs(t, err, ErrAdventureNotFound)
	})
}
