package nodes

import (
	"testing"

	"github.com/aretw0/parley/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestOptionTable_KeepsInsertionOrder(t *testing.T) {
	var table OptionTable
	table.Insert("zeta", 3)
	table.Insert("alpha", 4)
	table.Insert("mid", 5)

	assert.Equal(t, []domain.Option{
		{Label: "zeta", To: 3},
		{Label: "alpha", To: 4},
		{Label: "mid", To: 5},
	}, table.All())
}

func TestOptionTable_OverrideKeepsPositionAndCount(t *testing.T) {
	var table OptionTable
	assert.True(t, table.Insert("X", 2))
	assert.True(t, table.Insert("Y", 3))
	assert.False(t, table.Insert("X", 9))
	assert.False(t, table.Insert("X", 10))

	assert.Equal(t, 2, table.Len())
	assert.Equal(t, []domain.Option{{Label: "X", To: 10}, {Label: "Y", To: 3}}, table.All())

	to, ok := table.Lookup("X")
	assert.True(t, ok)
	assert.Equal(t, domain.NodeID(10), to)
}

func TestOptionTable_LookupMissing(t *testing.T) {
	var table OptionTable
	_, ok := table.Lookup("nope")
	assert.False(t, ok)

	table.Insert("yes", 2)
	_, ok = table.Lookup("Yes")
	assert.False(t, ok, "labels are case sensitive")
}

func TestOptionTable_AllReturnsCopy(t *testing.T) {
	var table OptionTable
	table.Insert("a", 1)
	all := table.All()
	all[0].To = 99

	to, _ := table.Lookup("a")
	assert.Equal(t, domain.NodeID(1), to)
}
