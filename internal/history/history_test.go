package history

import (
	"reflect"
	"testing"
)

func TestAppend_DedupesOnlyConsecutive(t *testing.T) {
	s := NewStore()
	sess := s.NewSession()

	s.Append(sess, "Tata Motors")
	s.Append(sess, "Tata Motors") // immediate repeat dropped
	s.Append(sess, "Infosys")
	s.Append(sess, "Tata Motors") // non-consecutive repeat kept

	got := s.List(sess)
	want := []string{"Tata Motors", "Infosys", "Tata Motors"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestClear(t *testing.T) {
	s := NewStore()
	sess := s.NewSession()
	s.Append(sess, "Reliance")
	s.Clear(sess)
	if got := s.List(sess); len(got) != 0 {
		t.Errorf("expected empty history after clear, got %v", got)
	}
	// Appending after clear starts fresh.
	s.Append(sess, "Reliance")
	if got := s.List(sess); len(got) != 1 {
		t.Errorf("expected one entry after re-append, got %v", got)
	}
}

func TestSessionsAreIsolated(t *testing.T) {
	s := NewStore()
	a := s.NewSession()
	b := s.NewSession()
	if a == b {
		t.Fatal("expected distinct session IDs")
	}
	s.Append(a, "Wipro")
	if got := s.List(b); len(got) != 0 {
		t.Errorf("session b must not see session a's entries, got %v", got)
	}
}

func TestList_ReturnsCopy(t *testing.T) {
	s := NewStore()
	sess := s.NewSession()
	s.Append(sess, "HDFC Bank")
	got := s.List(sess)
	got[0] = "mutated"
	if s.List(sess)[0] != "HDFC Bank" {
		t.Error("List must return a copy, not the backing slice")
	}
}
