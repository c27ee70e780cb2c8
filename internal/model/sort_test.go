package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextSortTogglesDirectionOnSameField(t *testing.T) {
	spec := DefaultAppointmentSort()

	spec = NextSort(spec, SortByDate)
	assert.Equal(t, SortSpec{Field: SortByDate, Direction: SortDesc}, spec)

	spec = NextSort(spec, SortByDate)
	assert.Equal(t, SortSpec{Field: SortByDate, Direction: SortAsc}, spec)
}

func TestNextSortResetsToAscendingOnNewField(t *testing.T) {
	spec := SortSpec{Field: SortByDate, Direction: SortDesc}

	spec = NextSort(spec, SortByDoctor)
	assert.Equal(t, SortSpec{Field: SortByDoctor, Direction: SortAsc}, spec)
}
