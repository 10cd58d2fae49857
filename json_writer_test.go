package tradestats

import (
	"encoding/json"
	"testing"
)

func TestJsonObjectWriter(t *testing.T) {
	t.Run("empty object", func(t *testing.T) {
		var w jsonObjectWriter
		got, err := w.MarshalJSON()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := "{}"; string(got) != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("ordered fields", func(t *testing.T) {
		var w jsonObjectWriter
		w.Append("b", 1)
		w.Append("a", "hello")
		got, err := w.MarshalJSON()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := `{"b":1,"a":"hello"}`
		if string(got) != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("optional fields", func(t *testing.T) {
		var w jsonObjectWriter
		var missing *Quantity
		w.Append("a", 0) // a zero value is still appended.
		w.Optional("b", "")
		w.Optional("c", missing)
		w.Optional("d", "hello")
		got, err := w.MarshalJSON()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := `{"a":0,"d":"hello"}`
		if string(got) != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("marshal error", func(t *testing.T) {
		var w jsonObjectWriter
		w.Append("ch", make(chan int))
		w.Append("a", 1)
		if _, err := w.MarshalJSON(); err == nil {
			t.Error("MarshalJSON() want error for unsupported value, got nil")
		}
	})
}

func TestTransaction_MarshalJSON(t *testing.T) {
	q := Q(10)
	tx := Transaction{
		ID:       "txn-0-2024-03-15-AAPL",
		Date:     NewDate(2024, 3, 15),
		Action:   "Buy",
		Symbol:   "AAPL",
		Quantity: &q,
		Amount:   M(-1500),
	}
	got, err := json.Marshal(tx)
	if err != nil {
		t.Fatalf("json.Marshal() unexpected error: %v", err)
	}
	want := `{"id":"txn-0-2024-03-15-AAPL","date":"2024-03-15","action":"Buy","category":"trade","symbol":"AAPL","quantity":10,"fees":0,"amount":-1500}`
	if string(got) != want {
		t.Errorf("json.Marshal() got\n%s\nwant\n%s", got, want)
	}
}
