package courierrepo_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"courierhub/internal/adapters/out/postgres/courierrepo"
	"courierhub/internal/core/domain/model/courier"
	"courierhub/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type mockAggregateTracker struct{}

func (mockAggregateTracker) TrackAggregate(uuid.UUID, any) {}

type GormCourierRepositoryTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	repo      *courierrepo.GormCourierRepository
}

func (suite *GormCourierRepositoryTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&courierrepo.CourierDTO{})
	suite.Require().NoError(err)

	suite.repo = courierrepo.NewGormCourierRepository(db, mockAggregateTracker{})
}

func (suite *GormCourierRepositoryTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GormCourierRepositoryTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE couriers CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GormCourierRepositoryTestSuite) newCourier(maxOrders int, active bool) *courier.Courier {
	c, err := courier.NewCourier(uuid.New(), uuid.New(), "Test Courier", maxOrders)
	suite.Require().NoError(err)
	if active {
		c.Activate()
	}
	return c
}

func (suite *GormCourierRepositoryTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	c := suite.newCourier(3, true)

	err := suite.repo.Add(ctx, c)
	suite.Require().NoError(err)

	restored, err := suite.repo.Get(ctx, c.ID())
	suite.Require().NoError(err)
	suite.Equal(c.ID(), restored.ID())
	suite.Equal(c.UserID(), restored.UserID())
	suite.True(restored.IsActive())
	suite.Equal(0, restored.CurrentOrders())
	suite.Equal(3, restored.MaxOrders())
}

func (suite *GormCourierRepositoryTestSuite) TestAcquireSlot_StopsAtCapacity() {
	ctx := context.Background()
	c := suite.newCourier(2, true)
	suite.Require().NoError(suite.repo.Add(ctx, c))

	suite.Require().NoError(suite.repo.AcquireSlot(ctx, c.ID()))
	suite.Require().NoError(suite.repo.AcquireSlot(ctx, c.ID()))

	err := suite.repo.AcquireSlot(ctx, c.ID())
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrCapacityExceeded)

	restored, err := suite.repo.Get(ctx, c.ID())
	suite.Require().NoError(err)
	suite.Equal(2, restored.CurrentOrders())
}

func (suite *GormCourierRepositoryTestSuite) TestAcquireSlot_ConcurrentAcquiresStopAtCapacity() {
	ctx := context.Background()
	const maxOrders = 3
	const attempts = 24

	c := suite.newCourier(maxOrders, true)
	suite.Require().NoError(suite.repo.Add(ctx, c))

	results := make(chan error, attempts)
	var wg sync.WaitGroup
	for range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- suite.repo.AcquireSlot(ctx, c.ID())
		}()
	}
	wg.Wait()
	close(results)

	acquired := 0
	for err := range results {
		if err == nil {
			acquired++
			continue
		}
		suite.Require().ErrorIs(err, errs.ErrCapacityExceeded)
	}
	suite.Equal(maxOrders, acquired)

	restored, err := suite.repo.Get(ctx, c.ID())
	suite.Require().NoError(err)
	suite.Equal(maxOrders, restored.CurrentOrders())
}

func (suite *GormCourierRepositoryTestSuite) TestSlotCounter_StaysInBoundsUnderInterleaving() {
	ctx := context.Background()
	const maxOrders = 2
	const workers = 8
	const iterations = 10

	c := suite.newCourier(maxOrders, true)
	suite.Require().NoError(suite.repo.Add(ctx, c))

	// Workers take and hand back slots concurrently; every successful acquire
	// is paired with exactly one release.
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range iterations {
				if err := suite.repo.AcquireSlot(ctx, c.ID()); err == nil {
					suite.NoError(suite.repo.ReleaseSlot(ctx, c.ID()))
				}
			}
		}()
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	// Sample the stored counter while the workers race; it must never leave
	// the [0, max_orders] window.
	for sampling := true; sampling; {
		select {
		case <-done:
			sampling = false
		default:
			var current int
			err := suite.db.Raw("SELECT current_orders FROM couriers WHERE id = ?", c.ID()).Scan(&current).Error
			suite.Require().NoError(err)
			suite.GreaterOrEqual(current, 0)
			suite.LessOrEqual(current, maxOrders)
			time.Sleep(time.Millisecond)
		}
	}

	restored, err := suite.repo.Get(ctx, c.ID())
	suite.Require().NoError(err)
	suite.Equal(0, restored.CurrentOrders())
}

func (suite *GormCourierRepositoryTestSuite) TestAcquireSlot_OffShiftCourier() {
	ctx := context.Background()
	c := suite.newCourier(3, false)
	suite.Require().NoError(suite.repo.Add(ctx, c))

	err := suite.repo.AcquireSlot(ctx, c.ID())
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrCapacityExceeded)
}

func (suite *GormCourierRepositoryTestSuite) TestReleaseSlot_IdempotentAtZero() {
	ctx := context.Background()
	c := suite.newCourier(3, true)
	suite.Require().NoError(suite.repo.Add(ctx, c))

	suite.Require().NoError(suite.repo.AcquireSlot(ctx, c.ID()))
	suite.Require().NoError(suite.repo.ReleaseSlot(ctx, c.ID()))

	// A second release must not drive the counter negative.
	suite.Require().NoError(suite.repo.ReleaseSlot(ctx, c.ID()))

	restored, err := suite.repo.Get(ctx, c.ID())
	suite.Require().NoError(err)
	suite.Equal(0, restored.CurrentOrders())
}

func (suite *GormCourierRepositoryTestSuite) TestUpdate_DoesNotTouchLoadCounter() {
	ctx := context.Background()
	c := suite.newCourier(3, true)
	suite.Require().NoError(suite.repo.Add(ctx, c))
	suite.Require().NoError(suite.repo.AcquireSlot(ctx, c.ID()))

	// The aggregate still thinks the load is zero; a profile update must not
	// overwrite the counter the slot operation moved.
	c.Deactivate()
	suite.Require().NoError(suite.repo.Update(ctx, c))

	restored, err := suite.repo.Get(ctx, c.ID())
	suite.Require().NoError(err)
	suite.False(restored.IsActive())
	suite.Equal(1, restored.CurrentOrders())
}

func (suite *GormCourierRepositoryTestSuite) TestGetAllAvailable_FiltersAndOrders() {
	ctx := context.Background()

	active := suite.newCourier(1, true)
	offShift := suite.newCourier(3, false)
	full := suite.newCourier(1, true)

	suite.Require().NoError(suite.repo.Add(ctx, active))
	suite.Require().NoError(suite.repo.Add(ctx, offShift))
	suite.Require().NoError(suite.repo.Add(ctx, full))
	suite.Require().NoError(suite.repo.AcquireSlot(ctx, full.ID()))

	result, err := suite.repo.GetAllAvailable(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(active.ID(), result[0].ID())
}

func (suite *GormCourierRepositoryTestSuite) TestUpdate_UnknownCourier() {
	ctx := context.Background()
	c := suite.newCourier(3, true)

	err := suite.repo.Update(ctx, c)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestGormCourierRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(GormCourierRepositoryTestSuite))
}
