package receipt

import "testing"

func targetReceipt() Receipt {
	return Receipt{
		Retailer:     "Target",
		PurchaseDate: "2022-01-01",
		PurchaseTime: "13:01",
		Items: []Item{
			{ShortDescription: "Mountain Dew 12PK", Price: "6.49"},
			{ShortDescription: "Emils Cheese Pizza", Price: "12.25"},
			{ShortDescription: "Knorr Creamy Chicken", Price: "1.26"},
			{ShortDescription: "Doritos Nacho Cheese", Price: "3.35"},
			{ShortDescription: "   Klarbrunn 12-PK 12 FL OZ  ", Price: "12.00"},
		},
		Total: "35.35",
	}
}

func cornerMarketReceipt() Receipt {
	items := make([]Item, 4)
	for i := range items {
		items[i] = Item{ShortDescription: "Gatorade", Price: "2.25"}
	}
	return Receipt{
		Retailer:     "M&M Corner Market",
		PurchaseDate: "2022-03-20",
		PurchaseTime: "14:33",
		Items:        items,
		Total:        "9.00",
	}
}

func TestPointsTargetReceipt(t *testing.T) {
	// 6 retailer chars + 10 for two pairs + 3 + 3 description points + 6 odd day.
	if got := Points(targetReceipt()); got != 28 {
		t.Fatalf("Points = %d, want 28", got)
	}
}

func TestPointsCornerMarketReceipt(t *testing.T) {
	// 14 retailer chars + 50 round dollar + 25 quarter + 10 pairs + 10 afternoon.
	if got := Points(cornerMarketReceipt()); got != 109 {
		t.Fatalf("Points = %d, want 109", got)
	}
}

func TestPointsIsDeterministic(t *testing.T) {
	rcpt := targetReceipt()
	want := Points(rcpt)
	for i := 0; i < 10; i++ {
		if got := Points(rcpt); got != want {
			t.Fatalf("Points varied across calls: got %d, want %d", got, want)
		}
	}
}

func TestPointsAfternoonWindowBoundaries(t *testing.T) {
	cases := []struct {
		clock string
		bonus bool
	}{
		{"14:00", true},
		{"16:00", true},
		{"15:30", true},
		{"13:59", false},
		{"16:01", false},
	}
	for _, tc := range cases {
		rcpt := targetReceipt()
		rcpt.PurchaseTime = tc.clock
		diff := Points(rcpt) - Points(targetReceipt()) // 13:01 base earns no bonus
		want := 0
		if tc.bonus {
			want = afternoonPoints
		}
		if diff != want {
			t.Errorf("time %s: window bonus = %d, want %d", tc.clock, diff, want)
		}
	}
}

func TestPointsTotalBoundaries(t *testing.T) {
	cases := []struct {
		total string
		bonus int
	}{
		{"100.00", roundDollarPoints + quarterPoints},
		{"100.25", quarterPoints},
		{"100.10", 0},
	}
	for _, tc := range cases {
		rcpt := targetReceipt()
		rcpt.Total = tc.total
		base := targetReceipt() // 35.35 earns neither money bonus
		diff := Points(rcpt) - Points(base)
		if diff != tc.bonus {
			t.Errorf("total %s: money bonus = %d, want %d", tc.total, diff, tc.bonus)
		}
	}
}

func TestPointsOddPurchaseDay(t *testing.T) {
	odd := cornerMarketReceipt()
	odd.PurchaseDate = "2022-03-21"
	even := cornerMarketReceipt()
	if diff := Points(odd) - Points(even); diff != oddDayPoints {
		t.Fatalf("odd day bonus = %d, want %d", diff, oddDayPoints)
	}
}

func TestPointsItemPairs(t *testing.T) {
	rcpt := cornerMarketReceipt()
	cases := []struct {
		count int
		pairs int
	}{
		{1, 0},
		{2, 1},
		{3, 1},
		{4, 2},
		{5, 2},
	}
	for _, tc := range cases {
		items := make([]Item, tc.count)
		for i := range items {
			items[i] = Item{ShortDescription: "Gatorade", Price: "2.25"}
		}
		rcpt.Items = items
		want := 14 + 75 + 10 + tc.pairs*pointsPerItemPair // retailer + money + time
		if got := Points(rcpt); got != want {
			t.Errorf("%d items: Points = %d, want %d", tc.count, got, want)
		}
	}
}

func TestDescriptionPoints(t *testing.T) {
	cases := []struct {
		name string
		item Item
		want int
	}{
		{"length not multiple of three", Item{ShortDescription: "Gatorade", Price: "2.25"}, 0},
		{"exact multiple", Item{ShortDescription: "Emils Cheese Pizza", Price: "12.25"}, 3},
		{"trimmed before measuring", Item{ShortDescription: "   Klarbrunn 12-PK 12 FL OZ  ", Price: "12.00"}, 3},
		{"rounds up", Item{ShortDescription: "abc", Price: "0.01"}, 1},
		{"whole result", Item{ShortDescription: "abc", Price: "5.00"}, 1},
	}
	for _, tc := range cases {
		if got := descriptionPoints(tc.item); got != tc.want {
			t.Errorf("%s: descriptionPoints = %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestAlphanumericCount(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"Target", 6},
		{"M&M Corner Market", 14},
		{"   ", 0},
		{"A1-b2", 4},
	}
	for _, tc := range cases {
		if got := alphanumericCount(tc.in); got != tc.want {
			t.Errorf("alphanumericCount(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestParseCents(t *testing.T) {
	cases := []struct {
		in    string
		cents int
		ok    bool
	}{
		{"35.35", 3535, true},
		{"0.00", 0, true},
		{"9.00", 900, true},
		{"35", 0, false},
		{"35.5", 0, false},
		{"abc", 0, false},
	}
	for _, tc := range cases {
		cents, ok := parseCents(tc.in)
		if cents != tc.cents || ok != tc.ok {
			t.Errorf("parseCents(%q) = (%d, %v), want (%d, %v)", tc.in, cents, ok, tc.cents, tc.ok)
		}
	}
}
