// Package forms builds the huh forms shared by the CLI and the TUI.
package forms

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/smokefree/internal/constants"
	"github.com/julianstephens/smokefree/internal/models"
)

// ProfileValues holds the raw text of the onboarding and settings form.
type ProfileValues struct {
	QuitDate string
	Daily    string
	Cost     string
	PackSize string
	Why      string
}

// FromProfile pre-fills the form. A zero profile gets today's date and the
// default pack size.
func FromProfile(p models.Profile, today time.Time) ProfileValues {
	v := ProfileValues{
		QuitDate: p.QuitDate,
		Why:      p.MyWhy,
		PackSize: strconv.Itoa(constants.DefaultCigarettesPerPack),
	}
	if v.QuitDate == "" {
		v.QuitDate = today.Format(constants.DateFormat)
	}
	if p.DailyCigarettes > 0 {
		v.Daily = strconv.Itoa(p.DailyCigarettes)
	}
	if p.CostPerPack > 0 {
		v.Cost = strconv.FormatFloat(p.CostPerPack, 'f', -1, 64)
	}
	if p.CigarettesPerPack > 0 {
		v.PackSize = strconv.Itoa(p.CigarettesPerPack)
	}
	return v
}

// ToProfile parses the values. Range checks are left to validation.ValidateProfile.
func (v ProfileValues) ToProfile() (models.Profile, error) {
	daily, err := strconv.Atoi(strings.TrimSpace(v.Daily))
	if err != nil {
		return models.Profile{}, fmt.Errorf("daily cigarettes must be a whole number")
	}
	cost, err := strconv.ParseFloat(strings.TrimSpace(v.Cost), 64)
	if err != nil {
		return models.Profile{}, fmt.Errorf("cost per pack must be a number")
	}
	pack, err := strconv.Atoi(strings.TrimSpace(v.PackSize))
	if err != nil {
		return models.Profile{}, fmt.Errorf("cigarettes per pack must be a whole number")
	}
	return models.Profile{
		QuitDate:          strings.TrimSpace(v.QuitDate),
		DailyCigarettes:   daily,
		CostPerPack:       cost,
		CigarettesPerPack: pack,
		MyWhy:             strings.TrimSpace(v.Why),
	}, nil
}

// ValidateQuitDate rejects malformed and future dates.
func ValidateQuitDate(today time.Time) func(string) error {
	return func(s string) error {
		d, err := time.ParseInLocation(constants.DateFormat, strings.TrimSpace(s), today.Location())
		if err != nil {
			return errors.New("use YYYY-MM-DD")
		}
		if d.After(today) {
			return errors.New("quit date cannot be in the future")
		}
		return nil
	}
}

func ValidatePositiveInt(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return errors.New("enter a whole number greater than 0")
	}
	return nil
}

func ValidatePositiveFloat(s string) error {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || f <= 0 {
		return errors.New("enter an amount greater than 0")
	}
	return nil
}

func ValidateNotEmpty(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("this cannot be empty")
	}
	return nil
}

// NewProfileForm is the four-step onboarding form, also used to edit settings.
func NewProfileForm(v *ProfileValues, today time.Time) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("When did you quit?").
				Description("YYYY-MM-DD").
				Value(&v.QuitDate).
				Validate(ValidateQuitDate(today)),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("How many cigarettes did you smoke per day?").
				Value(&v.Daily).
				Validate(ValidatePositiveInt),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("How much does a pack cost?").
				Value(&v.Cost).
				Validate(ValidatePositiveFloat),
			huh.NewInput().
				Title("Cigarettes per pack").
				Value(&v.PackSize).
				Validate(ValidatePositiveInt),
		),
		huh.NewGroup(
			huh.NewText().
				Title("Why are you quitting?").
				Description("This is shown when a craving hits.").
				Value(&v.Why).
				Validate(ValidateNotEmpty),
		),
	)
}

// SlipUpValues holds the quick-log selections. An empty location and a zero
// strength mean "not specified".
type SlipUpValues struct {
	Location string
	Strength int
}

func DefaultSlipUpValues() SlipUpValues {
	return SlipUpValues{Strength: constants.DefaultCravingStrength}
}

// LocationOptions lists the vocabulary with "Not specified" first.
func LocationOptions() []huh.Option[string] {
	opts := []huh.Option[string]{huh.NewOption(constants.UnspecifiedLocation, "")}
	for _, loc := range constants.Locations {
		opts = append(opts, huh.NewOption(loc, loc))
	}
	return opts
}

func StrengthOptions() []huh.Option[int] {
	labels := map[int]string{1: "1 - mild", 2: "2", 3: "3 - moderate", 4: "4", 5: "5 - overwhelming"}
	opts := make([]huh.Option[int], 0, constants.MaxCravingStrength)
	for s := constants.MinCravingStrength; s <= constants.MaxCravingStrength; s++ {
		opts = append(opts, huh.NewOption(labels[s], s))
	}
	return opts
}

func NewSlipUpForm(v *SlipUpValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Where were you?").
				Options(LocationOptions()...).
				Value(&v.Location),
			huh.NewSelect[int]().
				Title("How strong was the craving?").
				Options(StrengthOptions()...).
				Value(&v.Strength),
		),
	)
}

// NewConfirmForm asks a yes/no question.
func NewConfirmForm(title string, confirmed *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(confirmed),
		),
	)
}
