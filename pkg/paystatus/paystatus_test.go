package paystatus_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/clubledger/pkg/club"
	"github.com/dmitrymomot/clubledger/pkg/paystatus"
)

var today = time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)

func payment(clientID string, done bool) club.Task {
	return club.Task{Topic: club.TopicPayment, ClientID: clientID, Done: done}
}

func TestDerive(t *testing.T) {
	t.Parallel()

	paid := club.Client{ID: "c1", Terms: club.Terms{Area: "Center", Group: "Kids", PayAmount: 5000, PayActual: 5000, PayDate: "2024-04-01"}}

	tests := []struct {
		name   string
		client club.Client
		tasks  []club.Task
		want   club.PayStatus
	}{
		{
			name:   "no payment tasks",
			client: paid,
			tasks:  []club.Task{{Topic: "call", ClientID: "c1"}, payment("c2", false)},
			want:   club.PayPending,
		},
		{
			name:   "open task",
			client: paid,
			tasks:  []club.Task{payment("c1", true), payment("c1", false)},
			want:   club.PayDebt,
		},
		{
			name:   "all done",
			client: paid,
			tasks:  []club.Task{payment("c1", true), payment("c1", true)},
			want:   club.PayActive,
		},
		{
			name: "underpaid with lapsed due date",
			client: club.Client{ID: "c1", Terms: club.Terms{
				Area: "Center", Group: "Kids", PayAmount: 5000, PayActual: 3000, PayDate: "2024-03-14",
			}},
			tasks: []club.Task{payment("c1", true)},
			want:  club.PayDebt,
		},
		{
			name: "underpaid within grace period",
			client: club.Client{ID: "c1", Terms: club.Terms{
				Area: "Center", Group: "Kids", PayAmount: 5000, PayActual: 3000, PayDate: "2024-03-15",
			}},
			tasks: []club.Task{payment("c1", true)},
			want:  club.PayActive,
		},
		{
			name: "underpaid secondary placement",
			client: club.Client{ID: "c1", Placements: []club.Placement{
				{Terms: club.Terms{Area: "Center", Group: "Kids", PayAmount: 5000, PayActual: 5000, PayDate: "2024-04-01"}},
				{Terms: club.Terms{Area: "North", Group: "Teens", PayAmount: 4000, PayActual: 1000, PayDate: "2024-02-01"}},
			}},
			tasks: []club.Task{payment("c1", true)},
			want:  club.PayDebt,
		},
		{
			name: "unknown paid amount is not a shortfall",
			client: club.Client{ID: "c1", Terms: club.Terms{
				Area: "Center", Group: "Kids", PayAmount: 5000, PayDate: "2024-01-01",
			}},
			tasks: []club.Task{payment("c1", true)},
			want:  club.PayActive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, paystatus.Derive(tt.client, tt.tasks, today))
		})
	}
}

func TestReconcile(t *testing.T) {
	t.Parallel()

	c := club.Client{ID: "c1", PayStatus: club.PayActive}

	out, changed := paystatus.Reconcile(c, []club.Task{payment("c1", false)}, today)
	require.True(t, changed)
	assert.Equal(t, club.PayDebt, out.PayStatus)
	assert.Equal(t, club.PayActive, c.PayStatus)

	out, changed = paystatus.Reconcile(out, []club.Task{payment("c1", false)}, today)
	assert.False(t, changed)
	assert.Equal(t, club.PayDebt, out.PayStatus)
}

func TestReconcileAll(t *testing.T) {
	t.Parallel()

	clients := []club.Client{
		{ID: "c1", PayStatus: club.PayPending},
		{ID: "c2", PayStatus: club.PayActive},
		{ID: "c3", PayStatus: club.PayPending},
	}
	tasks := []club.Task{
		payment("c1", true),
		payment("c2", true),
		{Topic: "call", ClientID: "c3"},
	}

	changed := paystatus.ReconcileAll(clients, tasks, today)
	require.Len(t, changed, 1)
	assert.Equal(t, "c1", changed[0].ID)
	assert.Equal(t, club.PayActive, changed[0].PayStatus)
}
