package service

import (
	"bytes"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCountdownManager() *CountdownManager {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return NewCountdownManager(logger)
}

func TestCountdown_FiresAfterDelay(t *testing.T) {
	// Подготовка
	manager := newTestCountdownManager()
	profileID := uuid.New()
	fired := make(chan struct{})

	// Действие
	manager.Start(profileID, 10*time.Millisecond, func() {
		close(fired)
	})

	// Проверки
	assert.True(t, manager.Pending(profileID))
	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("countdown did not fire")
	}
	assert.False(t, manager.Pending(profileID))
}

func TestCountdown_CancelPreventsFire(t *testing.T) {
	// Подготовка
	manager := newTestCountdownManager()
	profileID := uuid.New()
	var fired atomic.Bool

	manager.Start(profileID, 20*time.Millisecond, func() {
		fired.Store(true)
	})

	// Действие
	cancelled := manager.Cancel(profileID)

	// Проверки
	require.True(t, cancelled)
	assert.False(t, manager.Pending(profileID))
	time.Sleep(100 * time.Millisecond)
	assert.False(t, fired.Load(), "cancelled countdown must not fire")
}

func TestCountdown_CancelWithoutPending(t *testing.T) {
	// Подготовка
	manager := newTestCountdownManager()

	// Действие и проверки
	assert.False(t, manager.Cancel(uuid.New()))
}

func TestCountdown_RestartReplacesPrevious(t *testing.T) {
	// Подготовка
	manager := newTestCountdownManager()
	profileID := uuid.New()
	var firstFired, secondFired atomic.Bool
	done := make(chan struct{})

	// Действие
	manager.Start(profileID, 30*time.Millisecond, func() {
		firstFired.Store(true)
	})
	manager.Start(profileID, 10*time.Millisecond, func() {
		secondFired.Store(true)
		close(done)
	})

	// Проверки
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("replacement countdown did not fire")
	}
	time.Sleep(100 * time.Millisecond)
	assert.False(t, firstFired.Load(), "replaced countdown must not fire")
	assert.True(t, secondFired.Load())
}

func TestCountdown_IndependentProfiles(t *testing.T) {
	// Подготовка
	manager := newTestCountdownManager()
	first := uuid.New()
	second := uuid.New()
	fired := make(chan struct{})

	manager.Start(first, 10*time.Millisecond, func() {
		close(fired)
	})
	manager.Start(second, time.Minute, func() {})

	// Действие
	// Отмена одного профиля не трогает отсчет другого
	require.True(t, manager.Cancel(second))

	// Проверки
	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("countdown did not fire")
	}
	assert.False(t, manager.Pending(second))
}
