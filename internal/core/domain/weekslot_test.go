package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWeekSlotForTime_FirstWeek(t *testing.T) {
	// 2024-01-04 falls in ISO week 1.
	slot := WeekSlotForTime(time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, 1, slot)
}

func TestWeekSlotForTime_ConsecutiveWeeks(t *testing.T) {
	// Consecutive ISO weeks map to consecutive slots, wrapping after 18.
	start := time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 20; i++ {
		want := i%SymbolSlots + 1
		got := WeekSlotForTime(start.AddDate(0, 0, 7*i))
		assert.Equal(t, want, got, "week offset %d", i)
	}
}

func TestWeekSlotForTime_PeriodEighteen(t *testing.T) {
	start := time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 16; i++ {
		a := start.AddDate(0, 0, 7*i)
		b := a.AddDate(0, 0, 7*SymbolSlots)
		assert.Equal(t, WeekSlotForTime(a), WeekSlotForTime(b))
	}
}

func TestWeekSlot_ParsesTimestamp(t *testing.T) {
	now := time.Date(2030, 6, 1, 0, 0, 0, 0, time.UTC)
	// Timestamp wins over now.
	slot := WeekSlot("2024-01-04 09:00:00", now)
	assert.Equal(t, 1, slot)
}

func TestWeekSlot_FallsBackToNow(t *testing.T) {
	now := time.Date(2024, 1, 4, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, 1, WeekSlot("", now))
	assert.Equal(t, 1, WeekSlot("garbage", now))
}

func TestWeekSlot_AlwaysInRange(t *testing.T) {
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 120; i++ {
		slot := WeekSlotForTime(start.AddDate(0, 0, 7*i))
		assert.GreaterOrEqual(t, slot, 1)
		assert.LessOrEqual(t, slot, SymbolSlots)
	}
}

func TestSlotName(t *testing.T) {
	assert.Equal(t, "anchor", SlotName(1))
	assert.Equal(t, "wave", SlotName(18))
	assert.Equal(t, "", SlotName(0))
	assert.Equal(t, "", SlotName(19))
}
