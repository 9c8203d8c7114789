package catalog

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getgifts/starcase/internal/domain"
)

func validData() Data {
	return Data{
		Items: []domain.CatalogItem{
			{Name: "Teddy Bear", Rarity: domain.RarityCommon, Value: 50},
			{Name: "Magic Lamp", Rarity: domain.RarityRare, Value: 200},
			{Name: "Dragon Egg", Rarity: domain.RarityEpic, Value: 800},
			{Name: "Golden Crown", Rarity: domain.RarityLegendary, Value: 5000},
		},
		Cases: []domain.Case{
			{ID: "starter", Name: "Starter Case", Type: domain.CaseTypeStandard, Rarity: domain.RarityCommon, Price: 100},
			{ID: "monthly", Name: "Monthly Gift", Type: domain.CaseTypePromo, Rarity: domain.RarityCommon, Code: "FREE"},
			{ID: "whale", Name: "High Roller", Type: domain.CaseTypeTopup, Rarity: domain.RarityEpic, MinRecharged: 5000},
		},
		PromoCodes: []domain.PromoCode{
			{Code: "GIFT100", Reward: 100},
		},
	}
}

func TestNew_Valid(t *testing.T) {
	c, err := New(validData())
	require.NoError(t, err)

	assert.Len(t, c.Items(), 4)
	assert.Len(t, c.Cases(), 3)
	assert.Len(t, c.ItemsByRarity(domain.RarityCommon), 1)
	assert.Empty(t, c.ItemsByRarity("Mythic"))
}

func TestNew_RejectsBadDefinitions(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Data)
	}{
		{"no items", func(d *Data) { d.Items = nil }},
		{"zero value item", func(d *Data) { d.Items[0].Value = 0 }},
		{"unknown rarity", func(d *Data) { d.Items[0].Rarity = "Mythic" }},
		{"standard without price", func(d *Data) { d.Cases[0].Price = 0 }},
		{"promo without code", func(d *Data) { d.Cases[1].Code = "" }},
		{"topup without threshold", func(d *Data) { d.Cases[2].MinRecharged = 0 }},
		{"unknown case type", func(d *Data) { d.Cases[0].Type = "mystery" }},
		{"duplicate case id", func(d *Data) { d.Cases[1].ID = d.Cases[0].ID; d.Cases[1].Type = domain.CaseTypeStandard; d.Cases[1].Price = 1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := validData()
			tt.mutate(&data)
			_, err := New(data)
			assert.Error(t, err)
		})
	}
}

func TestLoad_FromFile(t *testing.T) {
	file, err := os.CreateTemp("", "catalog.json")
	require.NoError(t, err)
	defer os.Remove(file.Name())

	require.NoError(t, json.NewEncoder(file).Encode(validData()))
	require.NoError(t, file.Close())

	c, err := Load(file.Name())
	require.NoError(t, err)
	assert.Len(t, c.Items(), 4)

	_, err = Load(file.Name() + ".missing")
	assert.Error(t, err)
}

func TestCaseLookup(t *testing.T) {
	c, err := New(validData())
	require.NoError(t, err)

	cs, err := c.Case("monthly")
	require.NoError(t, err)
	assert.Equal(t, domain.CaseTypePromo, cs.Type)

	_, err = c.Case("nope")
	assert.ErrorIs(t, err, domain.ErrCaseNotFound)
}

func TestPromoReward_CaseInsensitive(t *testing.T) {
	c, err := New(validData())
	require.NoError(t, err)

	for _, code := range []string{"GIFT100", "gift100", "GiFt100"} {
		reward, ok := c.PromoReward(code)
		assert.True(t, ok, code)
		assert.Equal(t, 100, reward)
	}

	_, ok := c.PromoReward("BOGUS")
	assert.False(t, ok)
}

func TestUpgradeTargets(t *testing.T) {
	c, err := New(validData())
	require.NoError(t, err)

	// Source worth 200 at ratio 1.67 -> floor 334: Dragon Egg and Golden Crown
	targets := c.UpgradeTargets(200, 1.67)
	require.Len(t, targets, 2)
	for _, tgt := range targets {
		assert.GreaterOrEqual(t, float64(tgt.Value), 334.0)
	}
}

func TestTemplateLookup(t *testing.T) {
	c, err := New(validData())
	require.NoError(t, err)

	tpl, err := c.Template("Magic Lamp")
	require.NoError(t, err)
	assert.Equal(t, 200, tpl.Value)

	_, err = c.Template("Phantom Item")
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestNew_RejectsDuplicateItemName(t *testing.T) {
	data := validData()
	data.Items = append(data.Items, data.Items[0])

	_, err := New(data)
	assert.Error(t, err)
}
