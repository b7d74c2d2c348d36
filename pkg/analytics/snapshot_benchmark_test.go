package analytics_test

import (
	"strconv"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/dmitrymomot/clubledger/pkg/analytics"
	"github.com/dmitrymomot/clubledger/pkg/club"
)

var (
	benchAreas  = []string{"Center", "North", "East", club.ReserveArea}
	benchGroups = []string{"Kids", "Teens", "Adults", "Individual"}
	benchPlans  = []string{"monthly", "half-month", "single", "discount"}
)

// fakeDatabase builds a reproducible club with n clients.
func fakeDatabase(n int) club.Database {
	f := gofakeit.New(42)
	from := time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

	var db club.Database
	for _, a := range benchAreas {
		for _, g := range benchGroups {
			db.Schedule = append(db.Schedule, club.ScheduleSlot{
				ID: a + "/" + g, Area: a, Group: g,
				Weekday: f.Number(1, 7), Time: strconv.Itoa(f.Number(8, 21)) + ":00",
			})
			db.Settings.Groups = append(db.Settings.Groups, club.GroupSettings{
				Area: a, Group: g, Price: float64(f.Number(30, 90) * 100), Capacity: f.Number(6, 20),
			})
		}
		db.Settings.AreaCosts = append(db.Settings.AreaCosts, club.AreaCosts{Area: a, Rent: 50000, CoachSalary: 40000})
	}

	for i := range n {
		c := club.Client{
			ID:        strconv.Itoa(i),
			FullName:  f.Name(),
			Phone:     f.Phone(),
			Status:    club.ClientStatus(f.RandomString([]string{"new", "renewed", "returned", "active", "canceled"})),
			PayStatus: club.PayStatus(f.RandomString([]string{"pending", "active", "debt"})),
		}
		for j := range f.Number(1, 3) {
			paid := f.DateRange(from, to)
			p := club.Placement{
				ID: c.ID + "-" + strconv.Itoa(j),
				Terms: club.Terms{
					Area:             benchAreas[(i+j)%len(benchAreas)],
					Group:            f.RandomString(benchGroups),
					SubscriptionPlan: club.Plan(f.RandomString(benchPlans)),
					PayAmount:        float64(f.Number(30, 90) * 100),
					PayDate:          club.FormatDate(paid.AddDate(0, 1, 0)),
					RemainingLessons: club.IntPtr(f.Number(-2, 8)),
				},
			}
			c.Placements = append(c.Placements, p)
			c.PayHistory = append(c.PayHistory, club.FactEntry(club.PaymentFact{
				ID:          "f" + p.ID,
				PaidAt:      club.FormatISO(paid),
				Amount:      club.FloatPtr(p.PayAmount),
				PlacementID: p.ID,
			}))
		}
		club.SyncPrimary(&c)
		db.Clients = append(db.Clients, c)

		db.Attendance = append(db.Attendance, club.AttendanceEntry{
			ID: "e" + c.ID, ClientID: c.ID, Date: club.FormatDate(f.DateRange(from, to)), Attended: f.Bool(),
		})
		db.Leads = append(db.Leads, club.Lead{
			ID: "l" + c.ID, Name: f.Name(), Area: f.RandomString(benchAreas), CreatedAt: club.FormatISO(f.DateRange(from, to)),
		})
	}
	return db
}

func BenchmarkComputeSnapshot(b *testing.B) {
	db := fakeDatabase(2000)
	jan := analytics.Month(2024, time.January)

	b.Run("all_areas_month", func(b *testing.B) {
		b.ReportAllocs()
		for b.Loop() {
			_ = analytics.ComputeSnapshot(db, analytics.AllAreas, &jan, today)
		}
	})

	b.Run("single_area_lifetime", func(b *testing.B) {
		b.ReportAllocs()
		for b.Loop() {
			_ = analytics.ComputeSnapshot(db, "Center", nil, today)
		}
	})
}
