package cache_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"profiling-server/internal/infra/cache"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

type household struct {
	Number  string `json:"number"`
	Members int    `json:"members"`
}

var _ = ginkgo.Describe("RistrettoCache", func() {
	var (
		c   *cache.RistrettoCache
		ctx context.Context
	)

	ginkgo.BeforeEach(func() {
		var err error
		c, err = cache.New(nil)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		ctx = context.Background()
	})

	ginkgo.AfterEach(func() {
		c.Close()
	})

	ginkgo.It("reads its own writes", func() {
		gomega.Expect(c.Set(ctx, "k", []byte("v"), 0)).To(gomega.BeTrue())

		value, found := c.Get(ctx, "k")
		gomega.Expect(found).To(gomega.BeTrue())
		gomega.Expect(string(value)).To(gomega.Equal("v"))
	})

	ginkgo.It("expires entries after their ttl", func() {
		gomega.Expect(c.Set(ctx, "otp", []byte("123456"), 50*time.Millisecond)).To(gomega.BeTrue())

		gomega.Eventually(func() bool {
			_, found := c.Get(ctx, "otp")
			return found
		}).WithTimeout(2 * time.Second).Should(gomega.BeFalse())
	})

	ginkgo.It("deletes several keys at once", func() {
		c.Set(ctx, "a", []byte("1"), 0)
		c.Set(ctx, "b", []byte("2"), 0)

		c.Delete(ctx, "a", "b")

		_, foundA := c.Get(ctx, "a")
		_, foundB := c.Get(ctx, "b")
		gomega.Expect(foundA || foundB).To(gomega.BeFalse())
	})

	ginkgo.It("lists keys by glob pattern", func() {
		c.Set(ctx, "resident:1", []byte("x"), 0)
		c.Set(ctx, "resident:2", []byte("x"), 0)
		c.Set(ctx, "household:1", []byte("x"), 0)

		keys, err := c.Keys(ctx, "resident:*")
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(keys).To(gomega.ConsistOf("resident:1", "resident:2"))
	})

	ginkgo.It("ignores calls on a cancelled context", func() {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		gomega.Expect(c.Set(cancelled, "k", []byte("v"), 0)).To(gomega.BeFalse())
		_, err := c.Keys(cancelled, "*")
		gomega.Expect(err).To(gomega.MatchError(context.Canceled))
	})

	ginkgo.It("loads a missing key once for concurrent callers", func() {
		var loads atomic.Int32
		var wg sync.WaitGroup
		for range 10 {
			wg.Add(1)
			go func() {
				defer ginkgo.GinkgoRecover()
				defer wg.Done()
				value, err := c.GetOrSet(ctx, "slow", time.Minute, func() ([]byte, error) {
					loads.Add(1)
					time.Sleep(20 * time.Millisecond)
					return []byte("loaded"), nil
				})
				gomega.Expect(err).NotTo(gomega.HaveOccurred())
				gomega.Expect(string(value)).To(gomega.Equal("loaded"))
			}()
		}
		wg.Wait()

		gomega.Expect(loads.Load()).To(gomega.BeNumerically("<=", 2))
	})

	ginkgo.Context("JSON helpers", func() {
		ginkgo.It("round trips typed values", func() {
			gomega.Expect(cache.SetJSON(ctx, c, "household:1", household{Number: "HH-2026-000001", Members: 4}, time.Minute)).To(gomega.Succeed())

			got, found := cache.GetJSON[household](ctx, c, "household:1")
			gomega.Expect(found).To(gomega.BeTrue())
			gomega.Expect(got.Members).To(gomega.Equal(4))
		})

		ginkgo.It("drops entries that do not decode", func() {
			c.Set(ctx, "household:2", []byte("not json"), 0)

			_, found := cache.GetJSON[household](ctx, c, "household:2")
			gomega.Expect(found).To(gomega.BeFalse())
			_, stillThere := c.Get(ctx, "household:2")
			gomega.Expect(stillThere).To(gomega.BeFalse())
		})

		ginkgo.It("remembers loader results and propagates loader errors", func() {
			calls := 0
			loader := func() (household, error) {
				calls++
				return household{Number: "HH-2026-000003"}, nil
			}

			first, err := cache.Remember(ctx, c, "household:3", time.Minute, loader)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			second, err := cache.Remember(ctx, c, "household:3", time.Minute, loader)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(second).To(gomega.Equal(first))
			gomega.Expect(calls).To(gomega.Equal(1))

			_, err = cache.Remember(ctx, c, "household:4", time.Minute, func() (household, error) {
				return household{}, errors.New("db down")
			})
			gomega.Expect(err).To(gomega.MatchError("db down"))
		})

		ginkgo.It("invalidates by pattern", func() {
			c.Set(ctx, "family:1:members", []byte("[]"), 0)
			c.Set(ctx, "family:1", []byte("{}"), 0)

			cache.Invalidate(ctx, c, "family:1*")

			keys, _ := c.Keys(ctx, "family:*")
			gomega.Expect(keys).To(gomega.BeEmpty())
		})
	})
})

var _ = ginkgo.Describe("LocalLocker", func() {
	ginkgo.It("serializes holders of the same key", func() {
		locker := cache.NewLocalLocker()
		ctx := context.Background()

		lock, err := locker.Obtain(ctx, "household-number", time.Second)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		short, cancel := context.WithTimeout(ctx, 30*time.Millisecond)
		defer cancel()
		_, err = locker.Obtain(short, "household-number", time.Second)
		gomega.Expect(err).To(gomega.MatchError(cache.ErrLockNotObtained))

		other, err := locker.Obtain(ctx, "another-key", time.Second)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(other.Release(ctx)).To(gomega.Succeed())

		gomega.Expect(lock.Release(ctx)).To(gomega.Succeed())
		gomega.Expect(lock.Release(ctx)).To(gomega.Succeed())

		again, err := locker.Obtain(ctx, "household-number", time.Second)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(again.Release(ctx)).To(gomega.Succeed())
	})
})
