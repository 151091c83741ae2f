package sheets

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/sheet-engine/internal/domain/sheet"
	sheeterr "github.com/KirkDiggler/sheet-engine/internal/errors"
	"github.com/KirkDiggler/sheet-engine/internal/uuid"
)

// Data represents the serialized form of a sheet in Redis
type Data struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Name      string    `json:"name"`
	Source    string    `json:"source"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// redisRepo implements the Repository interface using Redis
type redisRepo struct {
	client        redis.UniversalClient
	uuidGenerator uuid.Generator
	timeProvider  TimeProvider
}

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client        redis.UniversalClient
	UUIDGenerator uuid.Generator // Optional, defaults to google UUIDs
	TimeProvider  TimeProvider   // Optional, defaults to the wall clock
}

// NewRedisRepository creates a new Redis-backed sheet repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	repo := &redisRepo{
		client:        cfg.Client,
		uuidGenerator: cfg.UUIDGenerator,
		timeProvider:  cfg.TimeProvider,
	}
	if repo.uuidGenerator == nil {
		repo.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}
	if repo.timeProvider == nil {
		repo.timeProvider = RealTimeProvider{}
	}
	return repo
}

// NewRedis creates a Redis-backed sheet repository with default settings
func NewRedis(client redis.UniversalClient) Repository {
	return NewRedisRepository(&RedisRepoConfig{Client: client})
}

func sheetKey(id string) string {
	return fmt.Sprintf("sheet:%s", id)
}

func ownerKey(ownerID string) string {
	return fmt.Sprintf("owner:%s:sheets", ownerID)
}

// Create stores a new sheet, assigning an ID when absent
func (r *redisRepo) Create(ctx context.Context, s *sheet.Sheet) error {
	if s == nil {
		return sheeterr.InvalidArgument("sheet cannot be nil")
	}

	if s.ID == "" {
		s.ID = r.uuidGenerator.New()
	}

	exists, err := r.client.Exists(ctx, sheetKey(s.ID)).Result()
	if err != nil {
		return sheeterr.Wrapf(err, "failed to check sheet '%s'", s.ID)
	}
	if exists > 0 {
		return sheeterr.AlreadyExistsf("sheet with ID '%s' already exists", s.ID).
			WithMeta("sheet_id", s.ID)
	}

	now := r.timeProvider.Now()
	s.CreatedAt = now
	s.UpdatedAt = now

	return r.set(ctx, s)
}

// Get retrieves a sheet by ID
func (r *redisRepo) Get(ctx context.Context, id string) (*sheet.Sheet, error) {
	if id == "" {
		return nil, sheeterr.InvalidArgument("sheet ID is required")
	}

	jsonData, err := r.client.Get(ctx, sheetKey(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, sheeterr.NotFoundf("sheet with ID '%s' not found", id).
				WithMeta("sheet_id", id)
		}
		return nil, sheeterr.Wrapf(err, "failed to get sheet '%s'", id)
	}

	var data Data
	if err := json.Unmarshal(jsonData, &data); err != nil {
		return nil, sheeterr.Wrapf(err, "failed to unmarshal sheet '%s'", id)
	}

	return toSheet(&data), nil
}

// GetByOwner retrieves all sheets for a specific owner
func (r *redisRepo) GetByOwner(ctx context.Context, ownerID string) ([]*sheet.Sheet, error) {
	if ownerID == "" {
		return nil, sheeterr.InvalidArgument("owner ID is required")
	}

	ids, err := r.client.SMembers(ctx, ownerKey(ownerID)).Result()
	if err != nil {
		return nil, sheeterr.Wrapf(err, "failed to list sheets for owner '%s'", ownerID)
	}

	result := make([]*sheet.Sheet, len(ids))

	g, ctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			s, err := r.Get(ctx, id)
			if err != nil {
				return err
			}
			result[i] = s
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return result, nil
}

// Update updates an existing sheet
func (r *redisRepo) Update(ctx context.Context, s *sheet.Sheet) error {
	if s == nil {
		return sheeterr.InvalidArgument("sheet cannot be nil")
	}
	if s.ID == "" {
		return sheeterr.InvalidArgument("sheet ID is required")
	}

	exists, err := r.client.Exists(ctx, sheetKey(s.ID)).Result()
	if err != nil {
		return sheeterr.Wrapf(err, "failed to check sheet '%s'", s.ID)
	}
	if exists == 0 {
		return sheeterr.NotFoundf("sheet with ID '%s' not found", s.ID).
			WithMeta("sheet_id", s.ID)
	}

	s.UpdatedAt = r.timeProvider.Now()

	return r.set(ctx, s)
}

// Delete removes a sheet
func (r *redisRepo) Delete(ctx context.Context, id string) error {
	if id == "" {
		return sheeterr.InvalidArgument("sheet ID is required")
	}

	s, err := r.Get(ctx, id)
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, sheetKey(id))
	pipe.SRem(ctx, ownerKey(s.OwnerID), id)
	if _, err := pipe.Exec(ctx); err != nil {
		return sheeterr.Wrapf(err, "failed to delete sheet '%s'", id)
	}

	return nil
}

func (r *redisRepo) set(ctx context.Context, s *sheet.Sheet) error {
	jsonData, err := json.Marshal(toData(s))
	if err != nil {
		return sheeterr.Wrapf(err, "failed to marshal sheet '%s'", s.ID)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, sheetKey(s.ID), string(jsonData), 0)
	pipe.SAdd(ctx, ownerKey(s.OwnerID), s.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return sheeterr.Wrapf(err, "failed to store sheet '%s'", s.ID)
	}

	return nil
}

func toData(s *sheet.Sheet) *Data {
	return &Data{
		ID:        s.ID,
		OwnerID:   s.OwnerID,
		Name:      s.Name,
		Source:    s.Source,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func toSheet(data *Data) *sheet.Sheet {
	return &sheet.Sheet{
		ID:        data.ID,
		OwnerID:   data.OwnerID,
		Name:      data.Name,
		Source:    data.Source,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
