package sql_test

import (
	"context"
	"errors"
	"time"

	"profiling-server/internal/infra/sql"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"gorm.io/gorm"
)

type purok struct {
	ID        string `gorm:"primaryKey"`
	Name      string
	Residents int
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

var _ = ginkgo.Describe("ORM", func() {
	var (
		orm sql.ORM
		ctx context.Context
	)

	ginkgo.BeforeEach(func() {
		var err error
		orm, err = sql.NewMemoryORM("orm_test")
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(orm.AutoMigrate(&purok{})).To(gomega.Succeed())
		gomega.Expect(orm.Unscoped().Where("1 = 1").Delete(&purok{}).Error()).To(gomega.Succeed())
		ctx = context.Background()
	})

	ginkgo.It("maps a missing row to ErrRecordNotFound", func() {
		var p purok
		err := orm.WithContext(ctx).First(&p, "id = ?", "missing").Error()
		gomega.Expect(errors.Is(err, sql.ErrRecordNotFound)).To(gomega.BeTrue())
	})

	ginkgo.It("creates, updates and counts rows", func() {
		gomega.Expect(orm.WithContext(ctx).Create(&purok{ID: "p1", Name: "Purok 1"}).Error()).To(gomega.Succeed())
		gomega.Expect(orm.WithContext(ctx).Create(&purok{ID: "p2", Name: "Purok 2"}).Error()).To(gomega.Succeed())

		err := orm.WithContext(ctx).Model(&purok{ID: "p1"}).Updates(map[string]any{"residents": 12}).Error()
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		var got purok
		gomega.Expect(orm.WithContext(ctx).First(&got, "id = ?", "p1").Error()).To(gomega.Succeed())
		gomega.Expect(got.Residents).To(gomega.Equal(12))

		var count int64
		gomega.Expect(orm.WithContext(ctx).Model(&purok{}).Count(&count).Error()).To(gomega.Succeed())
		gomega.Expect(count).To(gomega.Equal(int64(2)))
	})

	ginkgo.It("reports how many rows a conditional update touched", func() {
		gomega.Expect(orm.WithContext(ctx).Create(&purok{ID: "p4", Name: "Purok 4", Residents: 1}).Error()).To(gomega.Succeed())

		stale := orm.WithContext(ctx).Model(&purok{}).Where("id = ? AND residents = ?", "p4", 7).Updates(map[string]any{"name": "x"})
		gomega.Expect(stale.Error()).To(gomega.Succeed())
		gomega.Expect(stale.RowsAffected()).To(gomega.BeZero())

		current := orm.WithContext(ctx).Model(&purok{}).Where("id = ? AND residents = ?", "p4", 1).Updates(map[string]any{"name": "Purok Four"})
		gomega.Expect(current.Error()).To(gomega.Succeed())
		gomega.Expect(current.RowsAffected()).To(gomega.Equal(int64(1)))
	})

	ginkgo.It("hides soft deleted rows unless unscoped", func() {
		gomega.Expect(orm.WithContext(ctx).Create(&purok{ID: "p3", Name: "Purok 3"}).Error()).To(gomega.Succeed())
		gomega.Expect(orm.WithContext(ctx).Delete(&purok{}, "id = ?", "p3").Error()).To(gomega.Succeed())

		var visible []purok
		gomega.Expect(orm.WithContext(ctx).Find(&visible).Error()).To(gomega.Succeed())
		gomega.Expect(visible).To(gomega.BeEmpty())

		var all []purok
		gomega.Expect(orm.WithContext(ctx).Unscoped().Find(&all).Error()).To(gomega.Succeed())
		gomega.Expect(all).To(gomega.HaveLen(1))
	})

	ginkgo.It("rolls back a failed transaction", func() {
		err := orm.Transaction(func(tx sql.ORM) error {
			if err := tx.Create(&purok{ID: "p4", Name: "Purok 4"}).Error(); err != nil {
				return err
			}
			return errors.New("boom")
		})
		gomega.Expect(err).To(gomega.MatchError("boom"))

		var count int64
		gomega.Expect(orm.Model(&purok{}).Count(&count).Error()).To(gomega.Succeed())
		gomega.Expect(count).To(gomega.BeZero())
	})

	ginkgo.It("returns a usable ORM bound to a deadline", func() {
		var count int64
		err := orm.WithTimeout(ctx, 2*time.Second).Model(&purok{}).Count(&count).Error()
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
	})
})
