// Package volunteer validates the volunteer sign-up form.
package volunteer

import (
	"errors"
	"regexp"
	"strings"

	"GuardianesDelFuego/internal/constants"

	"github.com/go-playground/validator/v10"
)

var (
	ErrNameRequired  = errors.New("Ingresa tu nombre.")
	ErrInvalidPhone  = errors.New("Ingresa un teléfono válido.")
	ErrNoDaySelected = errors.New("Selecciona al menos un día disponible.")
)

const (
	SubmittedNotice = "Enviado ✓"
	ThanksNotice    = "¡Gracias! Te contactaremos para próximas activaciones."
	DefaultName     = "Valentina"
)

// SubmitDelay is how long the form stays open after a successful submit.
const SubmitDelay = constants.VolunteerDelay

// Area is the kind of support offered.
type Area string

const (
	AreaBrigade   Area = "brigada"
	AreaLogistics Area = "logistica"
	AreaFirstAid  Area = "primeros_auxilios"
)

var Areas = []Area{AreaBrigade, AreaLogistics, AreaFirstAid}

func (a Area) Label() string {
	switch a {
	case AreaBrigade:
		return "Brigada"
	case AreaLogistics:
		return "Logística"
	case AreaFirstAid:
		return "Primeros auxilios"
	}
	return string(a)
}

// TimeSlot is the preferred time of day.
type TimeSlot string

const (
	SlotMorning   TimeSlot = "manana"
	SlotAfternoon TimeSlot = "tarde"
	SlotNight     TimeSlot = "noche"
	SlotAny       TimeSlot = "indiferente"
)

var TimeSlots = []TimeSlot{SlotMorning, SlotAfternoon, SlotNight, SlotAny}

func (s TimeSlot) Label() string {
	switch s {
	case SlotMorning:
		return "Mañana (6–12)"
	case SlotAfternoon:
		return "Tarde (12–18)"
	case SlotNight:
		return "Noche (18–22)"
	case SlotAny:
		return "Indiferente"
	}
	return string(s)
}

// Day labels in week order.
var Days = []string{"Lun", "Mar", "Mié", "Jue", "Vie", "Sáb", "Dom"}

// Form is the volunteer input. Field order is validation order.
type Form struct {
	Name  string          `validate:"notblank"`
	Phone string          `validate:"phone"`
	Days  map[string]bool `validate:"anyday"`
	Area  Area
	Hours TimeSlot
	Note  string
}

// NewForm returns the form with its initial values.
func NewForm() Form {
	return Form{
		Name:  DefaultName,
		Area:  AreaBrigade,
		Hours: SlotAny,
		Days:  map[string]bool{},
	}
}

// ToggleDay flips a day's selection.
func (f *Form) ToggleDay(day string) {
	if f.Days == nil {
		f.Days = map[string]bool{}
	}
	if f.Days[day] {
		delete(f.Days, day)
		return
	}
	f.Days[day] = true
}

// SelectedDays returns the chosen days in week order.
func (f Form) SelectedDays() []string {
	var out []string
	for _, d := range Days {
		if f.Days[d] {
			out = append(out, d)
		}
	}
	return out
}

// phoneRe accepts Unicode space separators too, so pasted numbers with
// no-break spaces pass.
var phoneRe = regexp.MustCompile(`^[0-9+\p{Z}\s-]{7,}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phoneRe.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("anyday", func(fl validator.FieldLevel) bool {
		it := fl.Field().MapRange()
		for it.Next() {
			if it.Value().Bool() {
				return true
			}
		}
		return false
	})
	return v
}

var tagErrors = map[string]error{
	"notblank": ErrNameRequired,
	"phone":    ErrInvalidPhone,
	"anyday":   ErrNoDaySelected,
}

// Validate returns the first failing rule: name, then phone, then days.
func (f Form) Validate() error {
	err := validate.Struct(f)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	if mapped, ok := tagErrors[verrs[0].Tag()]; ok {
		return mapped
	}
	return err
}
