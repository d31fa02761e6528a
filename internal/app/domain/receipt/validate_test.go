package receipt

import "testing"

func validReceipt() Receipt {
	return Receipt{
		Retailer:     "Target",
		PurchaseDate: "2022-01-01",
		PurchaseTime: "13:01",
		Items: []Item{
			{ShortDescription: "Mountain Dew 12PK", Price: "6.49"},
		},
		Total: "6.49",
	}
}

func TestValidateAcceptsWellFormedReceipt(t *testing.T) {
	if !Validate(validReceipt()) {
		t.Fatal("expected well-formed receipt to validate")
	}
}

func TestValidateRejectsEmptyReceipt(t *testing.T) {
	if Validate(Receipt{}) {
		t.Fatal("expected empty receipt to be rejected")
	}
}

func TestValidatePurchaseDate(t *testing.T) {
	cases := []struct {
		date string
		want bool
	}{
		{"2022-01-01", true},
		{"2022-12-31", true},
		{"2022-02-30", true}, // range check only, not calendar-aware
		{"2022-13-01", false},
		{"2022-00-10", false},
		{"2022-01-32", false},
		{"2022-01-00", false},
		{"22-01-01", false},
		{"2022/01/01", false},
		{"", false},
	}
	for _, tc := range cases {
		rcpt := validReceipt()
		rcpt.PurchaseDate = tc.date
		if got := Validate(rcpt); got != tc.want {
			t.Errorf("Validate with date %q = %v, want %v", tc.date, got, tc.want)
		}
	}
}

func TestValidatePurchaseTime(t *testing.T) {
	cases := []struct {
		clock string
		want  bool
	}{
		{"00:00", true},
		{"23:59", true},
		{"14:33:05", true},
		{"24:00", false},
		{"12:60", false},
		{"9:05", false},
		{"12:05:60", false},
		{"", false},
	}
	for _, tc := range cases {
		rcpt := validReceipt()
		rcpt.PurchaseTime = tc.clock
		if got := Validate(rcpt); got != tc.want {
			t.Errorf("Validate with time %q = %v, want %v", tc.clock, got, tc.want)
		}
	}
}

func TestValidateRequiresAtLeastOneItem(t *testing.T) {
	rcpt := validReceipt()
	rcpt.Items = nil
	if Validate(rcpt) {
		t.Fatal("expected receipt without items to be rejected")
	}
	rcpt.Items = []Item{}
	if Validate(rcpt) {
		t.Fatal("expected receipt with empty item list to be rejected")
	}
}

func TestValidateTotalPatternIsUnanchored(t *testing.T) {
	cases := []struct {
		total string
		want  bool
	}{
		{"35.35", true},
		{"0.00", true},
		{"total: 35.35 USD", true}, // substring match is deliberate
		{"35.3", false},
		{"35", false},
		{"", false},
	}
	for _, tc := range cases {
		rcpt := validReceipt()
		rcpt.Total = tc.total
		if got := Validate(rcpt); got != tc.want {
			t.Errorf("Validate with total %q = %v, want %v", tc.total, got, tc.want)
		}
	}
}

func TestValidateRejectsInvalidItems(t *testing.T) {
	cases := []struct {
		name string
		item Item
		want bool
	}{
		{"plain description", Item{ShortDescription: "Gatorade", Price: "2.25"}, true},
		{"hyphen and spaces", Item{ShortDescription: "   Klarbrunn 12-PK 12 FL OZ  ", Price: "12.00"}, true},
		{"empty description", Item{ShortDescription: "", Price: "2.25"}, false},
		{"punctuation in description", Item{ShortDescription: "Chips & Salsa", Price: "2.25"}, false},
		{"price missing cents", Item{ShortDescription: "Gatorade", Price: "2.2"}, false},
		{"price anchored", Item{ShortDescription: "Gatorade", Price: "x2.25"}, false},
		{"empty price", Item{ShortDescription: "Gatorade", Price: ""}, false},
	}
	for _, tc := range cases {
		rcpt := validReceipt()
		rcpt.Items = append(rcpt.Items, tc.item)
		if got := Validate(rcpt); got != tc.want {
			t.Errorf("%s: Validate = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestValidateRetailerHasNoContentRule(t *testing.T) {
	rcpt := validReceipt()
	rcpt.Retailer = ""
	if !Validate(rcpt) {
		t.Fatal("retailer carries no content rule; empty string must pass")
	}
	rcpt.Retailer = "M&M Corner Market"
	if !Validate(rcpt) {
		t.Fatal("retailer with punctuation must pass")
	}
}

func TestValidateIsDeterministic(t *testing.T) {
	rcpt := validReceipt()
	first := Validate(rcpt)
	for i := 0; i < 10; i++ {
		if Validate(rcpt) != first {
			t.Fatal("Validate must be deterministic")
		}
	}
}
