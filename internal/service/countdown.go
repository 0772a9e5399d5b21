package service

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// CountdownManager управляет отложенным запуском SOS: у профиля может быть
// не больше одного ожидающего отсчета. Отмена гарантированно без гонок:
// если Cancel вернул true, fire уже не выполнится.
type CountdownManager struct {
	mu     sync.Mutex
	timers map[uuid.UUID]*time.Timer
	logger *logrus.Logger
}

func NewCountdownManager(logger *logrus.Logger) *CountdownManager {
	return &CountdownManager{
		timers: make(map[uuid.UUID]*time.Timer),
		logger: logger,
	}
}

// Start запускает отсчет для профиля. Повторный Start заменяет
// предыдущий отсчет, не запуская его.
func (m *CountdownManager) Start(profileID uuid.UUID, delay time.Duration, fire func()) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if prev, ok := m.timers[profileID]; ok {
		prev.Stop()
	}

	var timer *time.Timer
	timer = time.AfterFunc(delay, func() {
		m.mu.Lock()
		// Отсчет мог быть отменен или заменен, пока колбек ждал мьютекс
		if m.timers[profileID] != timer {
			m.mu.Unlock()
			return
		}
		delete(m.timers, profileID)
		m.mu.Unlock()

		fire()
	})
	m.timers[profileID] = timer

	m.logger.WithFields(logrus.Fields{
		"profile_id": profileID,
		"delay":      delay,
	}).Info("SOS countdown started")
}

// Cancel отменяет ожидающий отсчет. Возвращает false, если отсчета
// нет или он уже сработал.
func (m *CountdownManager) Cancel(profileID uuid.UUID) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	timer, ok := m.timers[profileID]
	if !ok {
		return false
	}
	delete(m.timers, profileID)
	timer.Stop()

	m.logger.WithField("profile_id", profileID).Info("SOS countdown cancelled")
	return true
}

// Pending сообщает, есть ли у профиля ожидающий отсчет
func (m *CountdownManager) Pending(profileID uuid.UUID) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.timers[profileID]
	return ok
}
