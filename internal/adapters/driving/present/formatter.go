package present

import (
	"fmt"
	"time"
	_ "time/tzdata" // zone data for hosts without a system database

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/riosdeldesierto/consulta-clientes/internal/core/domain"
)

// Placeholder is shown for missing values.
const Placeholder = "-"

// supported lists the languages with date and number conventions below.
// The first entry is the fallback.
var supported = []language.Tag{
	language.Spanish,
	language.English,
}

var matcher = language.NewMatcher(supported)

// conventions holds the per-language formatting rules.
type conventions struct {
	months       [12]string
	longDateTime func(c conventions, t time.Time) string
	shortDate    string
	moneySep     string // between symbol and digits
	am, pm       string
}

var byLanguage = map[language.Base]conventions{
	mustBase(language.Spanish): {
		months: [12]string{
			"enero", "febrero", "marzo", "abril", "mayo", "junio",
			"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
		},
		longDateTime: func(c conventions, t time.Time) string {
			return fmt.Sprintf("%d de %s de %d, %s", t.Day(), c.months[t.Month()-1], t.Year(), c.clock(t))
		},
		shortDate: "02/01/2006",
		moneySep:  " ",
		am:        "a. m.",
		pm:        "p. m.",
	},
	mustBase(language.English): {
		months: [12]string{
			"January", "February", "March", "April", "May", "June",
			"July", "August", "September", "October", "November", "December",
		},
		longDateTime: func(c conventions, t time.Time) string {
			return fmt.Sprintf("%s %d, %d, %s", c.months[t.Month()-1], t.Day(), t.Year(), c.clock(t))
		},
		shortDate: "01/02/2006",
		moneySep:  "",
		am:        "AM",
		pm:        "PM",
	},
}

func mustBase(tag language.Tag) language.Base {
	base, _ := tag.Base()
	return base
}

// clock renders a two-digit 12-hour time with the day period.
func (c conventions) clock(t time.Time) string {
	period := c.am
	if t.Hour() >= 12 {
		period = c.pm
	}
	hour := t.Hour() % 12
	if hour == 0 {
		hour = 12
	}
	return fmt.Sprintf("%02d:%02d %s", hour, t.Minute(), period)
}

// Formatter renders dates and amounts for one locale, currency and time zone.
type Formatter struct {
	tag      language.Tag
	conv     conventions
	currency currency.Unit
	printer  *message.Printer
	symbol   string
	loc      *time.Location
}

// NewFormatter creates a formatter.
// Unsupported locales fall back to Spanish conventions for dates and numbers.
func NewFormatter(locale, currencyCode, timezone string) (*Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("%w: locale %q: %v", domain.ErrInvalidInput, locale, err)
	}

	unit, err := currency.ParseISO(currencyCode)
	if err != nil {
		return nil, fmt.Errorf("%w: currency %q: %v", domain.ErrInvalidInput, currencyCode, err)
	}

	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: timezone %q: %v", domain.ErrInvalidInput, timezone, err)
	}

	_, index, confidence := matcher.Match(tag)
	conv := byLanguage[mustBase(supported[index])]

	numbers := tag
	if confidence == language.No {
		numbers = supported[index]
	}
	printer := message.NewPrinter(numbers)

	return &Formatter{
		tag:      tag,
		conv:     conv,
		currency: unit,
		printer:  printer,
		symbol:   printer.Sprint(currency.NarrowSymbol(unit)),
		loc:      loc,
	}, nil
}

// NewFormatterFromSettings creates a formatter from application settings.
func NewFormatterFromSettings(s domain.AppSettings) (*Formatter, error) {
	return NewFormatter(s.Locale, s.Currency, s.Timezone)
}

// DefaultFormatter returns the es-CO, COP, America/Bogota formatter.
func DefaultFormatter() *Formatter {
	f, err := NewFormatter(domain.DefaultLocale, domain.DefaultCurrency, domain.DefaultTimezone)
	if err != nil {
		panic(err)
	}
	return f
}

// Locale returns the configured locale tag.
func (f *Formatter) Locale() string {
	return f.tag.String()
}

// Currency returns the ISO code of the configured currency.
func (f *Formatter) Currency() string {
	return f.currency.String()
}

// Money renders d rounded half up to whole units with locale grouping
// and the currency symbol, e.g. "$ 5.000.000".
func (f *Formatter) Money(d decimal.Decimal) string {
	whole := d.Round(0)
	sign := ""
	if whole.IsNegative() {
		sign = "-"
	}
	digits := f.printer.Sprint(number.Decimal(whole.Abs().IntPart(), number.MaxFractionDigits(0)))
	return sign + f.symbol + f.conv.moneySep + digits
}

// OptionalMoney renders d, or the placeholder when d is absent.
func (f *Formatter) OptionalMoney(d decimal.NullDecimal) string {
	if !d.Valid {
		return Placeholder
	}
	return f.Money(d.Decimal)
}

// LongDateTime renders t as a long date with time,
// e.g. "15 de marzo de 2024, 10:30 a. m.".
func (f *Formatter) LongDateTime(t time.Time) string {
	if t.IsZero() {
		return Placeholder
	}
	return f.conv.longDateTime(f.conv, t.In(f.loc))
}

// ShortDate renders t as a numeric date, e.g. "15/03/2024".
func (f *Formatter) ShortDate(t time.Time) string {
	if t.IsZero() {
		return Placeholder
	}
	return t.In(f.loc).Format(f.conv.shortDate)
}
