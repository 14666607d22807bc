package thesaurus

import (
	"context"
	"testing"
)

func TestStub_Related(t *testing.T) {
	section, err := NewStub().Related(context.Background(), "hello")
	if err != nil {
		t.Fatalf("Related() error = %v", err)
	}
	if section == nil {
		t.Fatal("Related() returned nil section")
	}
	if !section.Empty() {
		t.Errorf("stub section should be empty, got %+v", section)
	}
}
