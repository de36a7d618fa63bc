package service

import (
	"fmt"
	"math"
	"strconv"
)

// ScaleBasis is the per-100g reference record a meal draft scales
// against. Scaling always recomputes from the basis so that rounding
// never compounds across repeated weight changes.
type ScaleBasis struct {
	Name     string
	Calories float64
	ProteinG float64
	CarbsG   float64
	FatG     float64
}

// MealDraft is a meal entry under construction. A draft created from a
// search or scan result carries its basis and rescales when the weight
// changes; a manual draft has no basis and keeps whatever values were
// typed in.
type MealDraft struct {
	Name     string
	Calories int
	ProteinG float64
	CarbsG   float64
	FatG     float64
	WeightG  float64

	basis *ScaleBasis
}

func NewDraft() MealDraft {
	return MealDraft{WeightG: 100}
}

func DraftFromBasis(b ScaleBasis) MealDraft {
	d := MealDraft{Name: b.Name, WeightG: 100, basis: &b}
	d.rescale()
	return d
}

// SetWeight records the serving weight in grams and, when a basis is
// present, recomputes every macro from it.
func (d *MealDraft) SetWeight(grams float64) error {
	if grams < 0 {
		return fmt.Errorf("weight must be >= 0: %w", ErrValidation)
	}
	d.WeightG = grams
	if d.basis != nil {
		d.rescale()
	}
	return nil
}

func (d *MealDraft) rescale() {
	factor := d.WeightG / 100
	d.Calories = int(math.Round(d.basis.Calories * factor))
	d.ProteinG = round1(d.basis.ProteinG * factor)
	d.CarbsG = round1(d.basis.CarbsG * factor)
	d.FatG = round1(d.basis.FatG * factor)
}

// LogInput renders the draft back into the raw field values LogMeal
// validates.
func (d MealDraft) LogInput() LogMealInput {
	return LogMealInput{
		Name:     d.Name,
		Calories: strconv.Itoa(d.Calories),
		Protein:  strconv.FormatFloat(d.ProteinG, 'f', -1, 64),
		Carbs:    strconv.FormatFloat(d.CarbsG, 'f', -1, 64),
		Fat:      strconv.FormatFloat(d.FatG, 'f', -1, 64),
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
