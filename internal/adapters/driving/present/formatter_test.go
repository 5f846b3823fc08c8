package present

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riosdeldesierto/consulta-clientes/internal/core/domain"
)

func TestDefaultFormatter(t *testing.T) {
	f := DefaultFormatter()

	assert.Equal(t, "es-CO", f.Locale())
	assert.Equal(t, "COP", f.Currency())
}

func TestNewFormatter_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		locale   string
		currency string
		timezone string
	}{
		{"bad locale", "not a locale!", "COP", "UTC"},
		{"bad currency", "es-CO", "PESOS", "UTC"},
		{"bad timezone", "es-CO", "COP", "Mars/Olympus"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFormatter(tt.locale, tt.currency, tt.timezone)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrInvalidInput))
		})
	}
}

func TestNewFormatterFromSettings(t *testing.T) {
	f, err := NewFormatterFromSettings(domain.DefaultAppSettings())

	require.NoError(t, err)
	assert.Equal(t, "$ 10.000", f.Money(decimal.NewFromInt(10000)))
}

func TestFormatter_Money(t *testing.T) {
	f := DefaultFormatter()

	tests := []struct {
		name string
		in   decimal.Decimal
		want string
	}{
		{"five million", decimal.NewFromInt(5000000), "$ 5.000.000"},
		{"from string with cents", decimal.RequireFromString("5000000.00"), "$ 5.000.000"},
		{"rounds half up", decimal.RequireFromString("12344.50"), "$ 12.345"},
		{"rounds down", decimal.RequireFromString("999.49"), "$ 999"},
		{"zero", decimal.Zero, "$ 0"},
		{"ten thousand", decimal.NewFromInt(10000), "$ 10.000"},
		{"hundred thousand", decimal.NewFromInt(150000), "$ 150.000"},
		{"negative", decimal.NewFromInt(-25000), "-$ 25.000"},
		{"billions", decimal.NewFromInt(1234567890), "$ 1.234.567.890"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := f.Money(tt.in)
			assert.Equal(t, tt.want, got)
			assert.NotContains(t, got, ",")
		})
	}
}

func TestFormatter_Money_English(t *testing.T) {
	f, err := NewFormatter("en-US", "USD", "UTC")
	require.NoError(t, err)

	assert.Equal(t, "$5,000,000", f.Money(decimal.NewFromInt(5000000)))
	assert.Equal(t, "-$1,235", f.Money(decimal.RequireFromString("-1234.5")))
}

func TestFormatter_Money_OtherCurrency(t *testing.T) {
	f, err := NewFormatter("es-CO", "EUR", "UTC")
	require.NoError(t, err)

	assert.Equal(t, "EUR", f.Currency())
	assert.Equal(t, "€ 12.000", f.Money(decimal.NewFromInt(12000)))
}

func TestFormatter_OptionalMoney(t *testing.T) {
	f := DefaultFormatter()

	assert.Equal(t, Placeholder, f.OptionalMoney(decimal.NullDecimal{}))
	assert.Equal(t, "$ 75.000", f.OptionalMoney(decimal.NewNullDecimal(decimal.NewFromInt(75000))))
}

func TestFormatter_LongDateTime(t *testing.T) {
	f := DefaultFormatter()

	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{"morning", time.Date(2024, 3, 15, 15, 30, 0, 0, time.UTC), "15 de marzo de 2024, 10:30 a. m."},
		{"afternoon", time.Date(2024, 12, 1, 20, 5, 0, 0, time.UTC), "1 de diciembre de 2024, 03:05 p. m."},
		{"midnight", time.Date(2024, 1, 10, 5, 0, 0, 0, time.UTC), "10 de enero de 2024, 12:00 a. m."},
		{"noon", time.Date(2024, 7, 4, 17, 0, 0, 0, time.UTC), "4 de julio de 2024, 12:00 p. m."},
		{"zero", time.Time{}, Placeholder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.LongDateTime(tt.in))
		})
	}
}

func TestFormatter_LongDateTime_English(t *testing.T) {
	f, err := NewFormatter("en-US", "USD", "UTC")
	require.NoError(t, err)

	assert.Equal(t, "March 15, 2024, 03:30 PM", f.LongDateTime(time.Date(2024, 3, 15, 15, 30, 0, 0, time.UTC)))
}

func TestFormatter_ShortDate(t *testing.T) {
	f := DefaultFormatter()

	assert.Equal(t, "15/03/2024", f.ShortDate(time.Date(2024, 3, 15, 15, 30, 0, 0, time.UTC)))
	// 02:00 UTC is still the previous day in Bogotá.
	assert.Equal(t, "14/03/2024", f.ShortDate(time.Date(2024, 3, 15, 2, 0, 0, 0, time.UTC)))
	assert.Equal(t, Placeholder, f.ShortDate(time.Time{}))
}

func TestFormatter_UnsupportedLocaleFallsBack(t *testing.T) {
	f, err := NewFormatter("fr-FR", "EUR", "UTC")
	require.NoError(t, err)

	assert.Equal(t, "€ 10.000", f.Money(decimal.NewFromInt(10000)))
	assert.Equal(t, "15/03/2024", f.ShortDate(time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)))
}
