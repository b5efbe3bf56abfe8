package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/questarium/QST-ScheduleService/internal/domain"
)

// Client клиент для работы с каталогом приключений
type Client struct {
	baseURL    string
	httpClient *http.Client
	cache      *Cache
	log        Logger
}

// NewClient создает новый экземпляр клиента каталога
// cache может быть nil - тогда graceful degradation работает без снимка
func NewClient(baseURL string, timeout time.Duration, cache *Cache, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		cache: cache,
		log:   log,
	}
}

// ListAdventures получает все сюжеты каталога
func (c *Client) ListAdventures(ctx context.Context) ([]domain.Adventure, error) {
	url := fmt.Sprintf("%s/adventures", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var raw []rawAdventure
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	adventures := make([]domain.Adventure, 0, len(raw))
	for _, r := range raw {
		adventures = append(adventures, r.toDomain())
	}

	return adventures, nil
}

// GetAdventure получает один сюжет по id
func (c *Client) GetAdventure(ctx context.Context, adventureID string) (*domain.Adventure, error) {
	url := fmt.Sprintf("%s/adventures/%s", c.baseURL, adventureID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrAdventureNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var raw rawAdventure
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	adv := raw.toDomain()
	return &adv, nil
}

// ListAdventuresWithGracefulDegradation получает сюжеты с graceful degradation
// Успешный ответ сохраняется как снимок в кеше. При недоступности каталога
// отдается последний снимок; если снимка нет - ErrServiceDegraded, что
// позволяет календарю и форме брони работать с пустым списком сюжетов
func (c *Client) ListAdventuresWithGracefulDegradation(ctx context.Context) ([]domain.Adventure, error) {
	adventures, err := c.ListAdventures(ctx)
	if err == nil {
		if c.cache != nil {
			// Снимок обновляется по возможности, ошибка кеша не ломает ответ
			if cacheErr := c.cache.StoreSnapshot(ctx, adventures); cacheErr != nil {
				c.log.Warn("Failed to store catalog snapshot: %v", cacheErr)
			}
		}
		return adventures, nil
	}

	c.log.Error("Catalog unavailable, applying graceful degradation: %v", err)

	if c.cache != nil {
		snapshot, cacheErr := c.cache.LoadSnapshot(ctx)
		if cacheErr == nil {
			c.log.Info("Serving catalog snapshot from cache: %d adventures", len(snapshot))
			return snapshot, nil
		}
		if cacheErr != ErrCacheMiss {
			c.log.Warn("Failed to load catalog snapshot: %v", cacheErr)
		}
	}

	return nil, fmt.Errorf("%w: %v", ErrServiceDegraded, err)
}

// GetAdventureWithGracefulDegradation получает сюжет с graceful degradation
// При недоступности каталога сюжет ищется в кешированном снимке
func (c *Client) GetAdventureWithGracefulDegradation(ctx context.Context, adventureID string) (*domain.Adventure, error) {
	adv, err := c.GetAdventure(ctx, adventureID)
	if err == nil {
		return adv, nil
	}

	// Отсутствие сюжета - бизнес-ошибка, пробрасываем её дальше
	if err == ErrAdventureNotFound {
		return nil, err
	}

	c.log.Error("Catalog unavailable, looking up adventure_id=%s in snapshot: %v", adventureID, err)

	if c.cache != nil {
		snapshot, cacheErr := c.cache.LoadSnapshot(ctx)
		if cacheErr == nil {
			for i := range snapshot {
				if snapshot[i].ID == adventureID {
					return &snapshot[i], nil
				}
			}
			return nil, ErrAdventureNotFound
		}
		if cacheErr != ErrCacheMiss {
			c.log.Warn("Failed to load catalog snapshot: %v", cacheErr)
		}
	}

	return nil, fmt.Errorf("%w: adventure_id=%s, error=%v", ErrServiceDegraded, adventureID, err)
}
