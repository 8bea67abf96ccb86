package finance

import (
	"context"
	"math"
	"testing"

	"gestao_servicos/internal/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertAmount(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.Truef(t, dec(want).Equal(got), "expected %s, got %s", want, got)
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"1.005", "1.01"},
		{"1.004", "1"},
		{"2.675", "2.68"},
		{"0", "0"},
		{"10.999", "11"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assertAmount(t, tt.want, Round2(dec(tt.in)))
			assertAmount(t, tt.want, Round2(Round2(dec(tt.in))))
		})
	}
}

func TestFromFloat(t *testing.T) {
	assert.True(t, FromFloat(math.NaN()).IsZero())
	assert.True(t, FromFloat(math.Inf(1)).IsZero())
	assertAmount(t, "12.5", FromFloat(12.5))
}

func TestFromString(t *testing.T) {
	assert.True(t, FromString("").IsZero())
	assert.True(t, FromString("abc").IsZero())
	assertAmount(t, "99.9", FromString("99.9"))
}

func TestComputeTax(t *testing.T) {
	rate := dec("0.15")

	t.Run("invoiced", func(t *testing.T) {
		assertAmount(t, "150", ComputeTax(dec("1000"), true, rate))
	})

	t.Run("no invoice is always zero", func(t *testing.T) {
		for _, g := range []string{"0", "1", "1000", "123456.78"} {
			for _, r := range []string{"0", "0.15", "1"} {
				assert.True(t, ComputeTax(dec(g), false, dec(r)).IsZero())
			}
		}
	})

	t.Run("non positive gross", func(t *testing.T) {
		assert.True(t, ComputeTax(decimal.Zero, true, rate).IsZero())
		assert.True(t, ComputeTax(dec("-50"), true, rate).IsZero())
	})

	t.Run("negative rate", func(t *testing.T) {
		assert.True(t, ComputeTax(dec("100"), true, dec("-0.2")).IsZero())
	})

	t.Run("rounds to cents", func(t *testing.T) {
		assertAmount(t, "0.02", ComputeTax(dec("0.1"), true, rate))
		assertAmount(t, "18.52", ComputeTax(dec("123.45"), true, rate))
	})

	t.Run("deterministic", func(t *testing.T) {
		a := ComputeTax(dec("333.33"), true, dec("0.0725"))
		b := ComputeTax(dec("333.33"), true, dec("0.0725"))
		assert.True(t, a.Equal(b))
	})

	t.Run("monotonic in gross", func(t *testing.T) {
		prev := decimal.Zero
		for g := 0; g <= 2000; g += 7 {
			got := ComputeTax(decimal.NewFromInt(int64(g)), true, dec("0.033"))
			assert.False(t, got.LessThan(prev), "tax decreased at gross=%d", g)
			prev = got
		}
	})
}

func TestStaticTaxRate(t *testing.T) {
	r, err := StaticTaxRate(dec("0.1")).TaxRate(context.Background())
	require.NoError(t, err)
	assertAmount(t, "0.1", r)
}

func scenarioServices() []entities.Service {
	return []entities.Service{
		{
			ID:              "s1",
			GrossValue:      dec("1000"),
			OperationalCost: dec("200"),
			TaxAmount:       decimal.Zero,
			HasInvoice:      false,
			PaymentStatus:   entities.ServicePaymentPago,
		},
		{
			ID:              "s2",
			GrossValue:      dec("500"),
			OperationalCost: decimal.Zero,
			TaxAmount:       dec("75"),
			HasInvoice:      true,
			PaymentStatus:   entities.ServicePaymentPendente,
		},
	}
}

func TestAggregate(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		s := Aggregate(nil)
		for _, v := range []decimal.Decimal{s.GrossRevenue, s.NetRevenueBeforeTax, s.Costs, s.Taxes, s.NetProfit, s.InvoicedBase} {
			assert.True(t, v.IsZero())
		}
	})

	t.Run("scenario", func(t *testing.T) {
		s := Aggregate(scenarioServices())
		assertAmount(t, "1500", s.GrossRevenue)
		assertAmount(t, "200", s.Costs)
		assertAmount(t, "75", s.Taxes)
		assertAmount(t, "1300", s.NetRevenueBeforeTax)
		assertAmount(t, "1225", s.NetProfit)
		assertAmount(t, "500", s.InvoicedBase)
	})

	t.Run("zero valued fields", func(t *testing.T) {
		s := Aggregate([]entities.Service{{ID: "blank"}, {GrossValue: dec("10")}})
		assertAmount(t, "10", s.GrossRevenue)
		assertAmount(t, "10", s.NetProfit)
	})

	t.Run("order independent", func(t *testing.T) {
		in := scenarioServices()
		reversed := []entities.Service{in[1], in[0]}
		x, y := Aggregate(in), Aggregate(reversed)
		assert.True(t, x.GrossRevenue.Equal(y.GrossRevenue))
		assert.True(t, x.NetProfit.Equal(y.NetProfit))
		assert.True(t, x.InvoicedBase.Equal(y.InvoicedBase))
	})

	t.Run("additive over disjoint lists", func(t *testing.T) {
		a := []entities.Service{{GrossValue: dec("10.10")}, {GrossValue: dec("0.01")}}
		b := []entities.Service{{GrossValue: dec("99.99")}}
		all := append(append([]entities.Service{}, a...), b...)
		sum := Aggregate(a).GrossRevenue.Add(Aggregate(b).GrossRevenue)
		assert.True(t, Aggregate(all).GrossRevenue.Equal(sum))
	})
}

func TestForService(t *testing.T) {
	s := ForService(entities.Service{GrossValue: dec("500"), OperationalCost: dec("120.5"), TaxAmount: dec("75"), HasInvoice: true})
	assertAmount(t, "379.5", s.NetRevenueBeforeTax)
	assertAmount(t, "304.5", s.NetProfit)
	assertAmount(t, "500", s.InvoicedBase)
}

func TestComputeWallet(t *testing.T) {
	t.Run("scenario", func(t *testing.T) {
		all := scenarioServices()
		w := ComputeWallet(all, all)
		assertAmount(t, "800", w.Realized)
		assertAmount(t, "500", w.Pending)
	})

	// Pending deliberately ignores the viewing window: the backlog is always
	// reported in full even when the realized figures are filtered.
	t.Run("pending ignores the visible subset", func(t *testing.T) {
		all := scenarioServices()
		visible := all[:1]
		w := ComputeWallet(visible, all)
		assertAmount(t, "800", w.Realized)
		assertAmount(t, "500", w.Pending)

		w = ComputeWallet(nil, all)
		assert.True(t, w.Realized.IsZero())
		assertAmount(t, "500", w.Pending)
	})
}
