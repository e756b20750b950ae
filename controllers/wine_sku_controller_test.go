package controllers

import (
	"fmt"
	"testing"
	"time"
)

func validWineInput() WineSKUInput {
	return WineSKUInput{
		ProductCode:    "BDX-001",
		WineName:       "Test",
		VintageYear:    2020,
		Producer:       "P",
		Country:        "France",
		Region:         "Bordeaux",
		GrapeVarieties: []string{"Merlot"},
		AlcoholContent: 13.5,
		PriceBottle:    20.0,
		PriceGlass:     5.0,
		CostPrice:      15.0,
	}
}

func TestWineInputValidateAcceptsValidInput(t *testing.T) {
	in := validWineInput()
	if err := in.Validate(); err != nil {
		t.Fatalf("expected valid input, got %v", err)
	}
}

func TestWineInputValidateVintageBounds(t *testing.T) {
	in := validWineInput()
	in.VintageYear = 1800
	if err := in.Validate(); err == nil {
		t.Fatal("expected 1800 to be rejected")
	}

	in.VintageYear = time.Now().Year() + 1
	if err := in.Validate(); err == nil {
		t.Fatal("expected a future vintage to be rejected")
	}

	in.VintageYear = 1900
	if err := in.Validate(); err != nil {
		t.Fatalf("expected 1900 to be accepted, got %v", err)
	}

	in.VintageYear = time.Now().Year()
	if err := in.Validate(); err != nil {
		t.Fatalf("expected the current year to be accepted, got %v", err)
	}
}

func TestWineInputValidateRejectsNegativeNumbers(t *testing.T) {
	for i, mutate := range []func(*WineSKUInput){
		func(in *WineSKUInput) { in.AlcoholContent = -1 },
		func(in *WineSKUInput) { in.PriceBottle = -0.5 },
		func(in *WineSKUInput) { in.PriceGlass = -2 },
		func(in *WineSKUInput) { in.CostPrice = -10 },
	} {
		in := validWineInput()
		mutate(&in)
		if err := in.Validate(); err == nil {
			t.Fatalf("case %d: expected negative value to be rejected", i)
		}
	}
}

func TestWineInputValidateRequiresGrapeVarieties(t *testing.T) {
	in := validWineInput()
	in.GrapeVarieties = nil
	if err := in.Validate(); err == nil {
		t.Fatal("expected missing grape varieties to be rejected")
	}

	in.GrapeVarieties = []string{""}
	if err := in.Validate(); err == nil {
		t.Fatal("expected an empty variety entry to be rejected")
	}
}

func TestWineInputToModelCopiesLists(t *testing.T) {
	in := validWineInput()
	in.ConditionNotes = []string{"label scuffed"}
	sku := in.toModel()

	if sku.ProductCode != in.ProductCode || sku.VintageYear != in.VintageYear {
		t.Fatalf("model mismatch: %+v", sku)
	}
	if len(sku.GrapeVarieties) != 1 || sku.GrapeVarieties[0] != "Merlot" {
		t.Fatalf("grape varieties not carried over: %v", sku.GrapeVarieties)
	}
	if len(sku.ConditionNotes) != 1 || sku.ConditionNotes[0] != "label scuffed" {
		t.Fatalf("condition notes not carried over: %v", sku.ConditionNotes)
	}
	if fmt.Sprint(sku.ID) != "0" {
		t.Fatalf("id must stay unset until creation, got %v", sku.ID)
	}
}
