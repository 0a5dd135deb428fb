package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureItems() map[Identifier]*Item {
	return map[Identifier]*Item{
		"key":   {Name: "key", Description: "A key."},
		"torch": {Name: "torch", Description: "A torch."},
	}
}

func fixtureRooms() map[Title]map[Identifier]*Room {
	return map[Title]map[Identifier]*Room{
		"Wood Shed": {
			"":       {Name: "Wood Shed", Variant: ""},
			"closed": {Name: "Wood Shed", Variant: "closed"},
		},
	}
}

func requirementRecord(t *testing.T, value string) *Record {
	t.Helper()
	return extractOne(t, "[Response:r]\ntext = x\nrequires = "+value+"\n")
}

func TestParseRequirements(t *testing.T) {
	rec := requirementRecord(t, "has_item:key, does_not_have:torch, room_variant:Wood_Shed|closed")
	reqs, err := parseRequirements(rec, "requires", fixtureItems(), fixtureRooms())
	require.NoError(t, err)
	require.Len(t, reqs, 3)

	assert.Equal(t, RequireHasItem, reqs[0].Kind)
	assert.Equal(t, Identifier("key"), reqs[0].Item.Name)

	assert.Equal(t, RequireDoesNotHave, reqs[1].Kind)
	assert.Equal(t, Identifier("torch"), reqs[1].Item.Name)

	assert.Equal(t, RequireRoomVariant, reqs[2].Kind)
	assert.Equal(t, Title("Wood Shed"), reqs[2].Room.Name)
	assert.Equal(t, Identifier("closed"), reqs[2].Room.Variant)
}

func TestParseRequirementsKindIsCaseInsensitive(t *testing.T) {
	rec := requirementRecord(t, "HAS_ITEM:key")
	reqs, err := parseRequirements(rec, "requires", fixtureItems(), fixtureRooms())
	require.NoError(t, err)
	require.Len(t, reqs, 1)
	assert.Equal(t, RequireHasItem, reqs[0].Kind)
}

func TestParseRequirementsDefaultVariantTarget(t *testing.T) {
	rec := requirementRecord(t, "room_variant:Wood_Shed")
	reqs, err := parseRequirements(rec, "requires", fixtureItems(), fixtureRooms())
	require.NoError(t, err)
	require.Len(t, reqs, 1)
	assert.Equal(t, Identifier(""), reqs[0].Room.Variant)
}

func TestParseRequirementsEmptyPropertyYieldsNone(t *testing.T) {
	rec := extractOne(t, "[Response:r]\ntext = x\nrequires =\n")
	reqs, err := parseRequirements(rec, "requires", fixtureItems(), fixtureRooms())
	require.NoError(t, err)
	assert.Empty(t, reqs)
}

func TestParseRequirementsErrors(t *testing.T) {
	cases := []struct {
		name  string
		value string
		want  any
	}{
		{"unknown kind", "wears_hat:key", &InvalidValueError{}},
		{"no separator", "has_item", &InvalidValueError{}},
		{"missing item", "has_item:crowbar", &NotFoundError{}},
		{"missing room variant", "room_variant:Wood_Shed|open", &NotFoundError{}},
		{"missing room", "room_variant:Barn", &NotFoundError{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := requirementRecord(t, tc.value)
			_, err := parseRequirements(rec, "requires", fixtureItems(), fixtureRooms())
			require.Error(t, err)
			switch want := tc.want.(type) {
			case *InvalidValueError:
				assert.ErrorAs(t, err, &want)
			case *NotFoundError:
				assert.ErrorAs(t, err, &want)
			}
		})
	}
}
