package cache_test

import (
	"context"
	"errors"
	"time"

	"profiling-server/internal/infra/cache"
	mockcache "profiling-server/test/unit/doubles/infra/cache"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"github.com/redis/go-redis/v9"
	"go.uber.org/mock/gomock"
)

var _ = ginkgo.Describe("RedisCache", func() {
	var (
		redisCache *cache.RedisCache
		client     *mockcache.MockCacheClient
		ctrl       *gomock.Controller
		ctx        context.Context
	)

	ginkgo.BeforeEach(func() {
		ctrl = gomock.NewController(ginkgo.GinkgoT())
		client = mockcache.NewMockCacheClient(ctrl)
		redisCache = cache.NewRedisCacheWithClient(client, nil)
		ctx = context.Background()
	})

	ginkgo.It("stores and reads raw bytes", func() {
		client.EXPECT().
			Set(gomock.Any(), "otp:09171234567", []byte("hash"), 5*time.Minute).
			Return(redis.NewStatusCmd(ctx, "OK"))

		cmd := redis.NewStringCmd(ctx, "get", "otp:09171234567")
		cmd.SetVal("hash")
		client.EXPECT().Get(gomock.Any(), "otp:09171234567").Return(cmd)

		gomega.Expect(redisCache.Set(ctx, "otp:09171234567", []byte("hash"), 5*time.Minute)).To(gomega.BeTrue())
		value, found := redisCache.Get(ctx, "otp:09171234567")
		gomega.Expect(found).To(gomega.BeTrue())
		gomega.Expect(string(value)).To(gomega.Equal("hash"))
	})

	ginkgo.It("treats redis.Nil as a miss", func() {
		cmd := redis.NewStringCmd(ctx, "get", "missing")
		cmd.SetErr(redis.Nil)
		client.EXPECT().Get(gomock.Any(), "missing").Return(cmd)

		_, found := redisCache.Get(ctx, "missing")
		gomega.Expect(found).To(gomega.BeFalse())
	})

	ginkgo.It("reports a failed write", func() {
		status := redis.NewStatusCmd(ctx)
		status.SetErr(errors.New("connection refused"))
		client.EXPECT().Set(gomock.Any(), "k", gomock.Any(), time.Duration(0)).Return(status)

		gomega.Expect(redisCache.Set(ctx, "k", []byte("v"), 0)).To(gomega.BeFalse())
	})

	ginkgo.It("deletes all given keys in one call and skips empty deletes", func() {
		client.EXPECT().Del(gomock.Any(), "a", "b").Return(redis.NewIntCmd(ctx))

		redisCache.Delete(ctx, "a", "b")
		redisCache.Delete(ctx)
	})

	ginkgo.It("loads through on a miss", func() {
		miss := redis.NewStringCmd(ctx, "get", "resident:1")
		miss.SetErr(redis.Nil)
		client.EXPECT().Get(gomock.Any(), "resident:1").Return(miss)
		client.EXPECT().Set(gomock.Any(), "resident:1", []byte(`{"id":"1"}`), time.Minute).Return(redis.NewStatusCmd(ctx, "OK"))

		value, err := redisCache.GetOrSet(ctx, "resident:1", time.Minute, func() ([]byte, error) {
			return []byte(`{"id":"1"}`), nil
		})
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(string(value)).To(gomega.Equal(`{"id":"1"}`))
	})

	ginkgo.It("returns matching keys", func() {
		cmd := redis.NewStringSliceCmd(ctx, "keys", "resident:*")
		cmd.SetVal([]string{"resident:1", "resident:2"})
		client.EXPECT().Keys(gomock.Any(), "resident:*").Return(cmd)

		keys, err := redisCache.Keys(ctx, "resident:*")
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(keys).To(gomega.HaveLen(2))
	})

	ginkgo.It("pings through the client", func() {
		client.EXPECT().Ping(gomock.Any()).Return(redis.NewStatusCmd(ctx, "PONG"))
		gomega.Expect(redisCache.PingWithContext(ctx)).To(gomega.Succeed())
	})
})
