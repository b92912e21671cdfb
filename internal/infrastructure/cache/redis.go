package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/workhub-team/workhub/internal/domain/entities"
	"github.com/workhub-team/workhub/pkg/config"
)

// NewRedisClient creates a new Redis client and verifies the connection
func NewRedisClient(cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return client, nil
}

// MeetingCache is a best-effort read-through cache of meeting documents,
// invalidated on every successful update or restore.
type MeetingCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewMeetingCache creates a new meeting cache
func NewMeetingCache(client *redis.Client, ttl time.Duration) *MeetingCache {
	return &MeetingCache{client: client, ttl: ttl}
}

func meetingKey(workspaceID, meetingID string) string {
	return fmt.Sprintf("meeting:%s:%s", workspaceID, meetingID)
}

// GetMeeting retrieves a cached meeting; a miss returns (nil, nil)
func (c *MeetingCache) GetMeeting(ctx context.Context, workspaceID, meetingID string) (*entities.Meeting, error) {
	raw, err := c.client.Get(ctx, meetingKey(workspaceID, meetingID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read meeting from cache: %w", err)
	}

	var meeting entities.Meeting
	if err := json.Unmarshal(raw, &meeting); err != nil {
		return nil, fmt.Errorf("failed to decode cached meeting: %w", err)
	}
	return &meeting, nil
}

// SetMeeting stores a meeting with the configured TTL
func (c *MeetingCache) SetMeeting(ctx context.Context, meeting *entities.Meeting) error {
	raw, err := json.Marshal(meeting)
	if err != nil {
		return fmt.Errorf("failed to encode meeting for cache: %w", err)
	}
	return c.client.Set(ctx, meetingKey(meeting.WorkspaceID, meeting.ID), raw, c.ttl).Err()
}

// InvalidateMeeting drops a meeting from the cache
func (c *MeetingCache) InvalidateMeeting(ctx context.Context, workspaceID, meetingID string) error {
	return c.client.Del(ctx, meetingKey(workspaceID, meetingID)).Err()
}
