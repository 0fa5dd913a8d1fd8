package remote

import (
	"context"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/formcheck/pkg/validation"
)

// SetMembership is the part of a redis client used by the set rules.
// *redis.Client, *redis.ClusterClient and redis.UniversalClient satisfy it.
type SetMembership interface {
	SIsMember(ctx context.Context, key string, member any) *redis.BoolCmd
}

// RedisMember fails with CodeNotFound when the value is not a member of the set at key.
func RedisMember(client SetMembership, key, message string) validation.AsyncFunc {
	return redisSetRule(client, key, func(member bool) (validation.Outcome, bool) {
		return validation.Failure().WithCode(CodeNotFound).WithMessage(message), !member
	})
}

// RedisAbsent fails with CodeTaken when the value is already a member of the set at key.
func RedisAbsent(client SetMembership, key, message string) validation.AsyncFunc {
	return redisSetRule(client, key, func(member bool) (validation.Outcome, bool) {
		return validation.Failure().WithCode(CodeTaken).WithMessage(message), member
	})
}

func redisSetRule(client SetMembership, key string, judge func(member bool) (validation.Outcome, bool)) validation.AsyncFunc {
	return func(ctx context.Context, in validation.InputState, _ validation.Inputs, progress validation.ProgressFunc) (validation.Outcome, error) {
		if strings.TrimSpace(in.Value) == "" {
			return validation.Success(), nil
		}

		progress(0, "checking "+key)
		member, err := client.SIsMember(ctx, key, in.Value).Result()
		if err != nil {
			return validation.Outcome{}, fmt.Errorf("%w: sismember %s: %w", ErrLookup, key, err)
		}
		progress(100, "checked "+key)

		if out, failed := judge(member); failed {
			return out, nil
		}
		return validation.Success(), nil
	}
}
