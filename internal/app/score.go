// internal/app/score.go
package app

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// Progress — единственное, что движок сохраняет между запусками.
type Progress struct {
	BestWave int  `yaml:"bestWave"`
	EverWon  bool `yaml:"everWon"`
}

const (
	progressObject   = "progress"
	progressProperty = "global"
)

// ScoreStore хранит прогресс в кросс-платформенном key-value хранилище gdata.
// Manager может быть nil — деградация в "только память", без ошибок.
type ScoreStore struct {
	manager  *gdata.Manager
	progress Progress
}

// NewScoreStore открывает хранилище и читает сохранённый прогресс.
func NewScoreStore(appName string) (*ScoreStore, error) {
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		// Ограниченное окружение: играем без сохранений.
		return &ScoreStore{}, fmt.Errorf("failed to open score storage: %w", err)
	}
	store := &ScoreStore{manager: manager}
	if err := store.load(); err != nil {
		return store, err
	}
	return store, nil
}

func (s *ScoreStore) load() error {
	if s.manager == nil || !s.manager.ObjectPropExists(progressObject, progressProperty) {
		return nil
	}
	data, err := s.manager.LoadObjectProp(progressObject, progressProperty)
	if err != nil {
		return fmt.Errorf("failed to load progress: %w", err)
	}
	var p Progress
	if err := yaml.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("failed to unmarshal progress: %w", err)
	}
	s.progress = p
	return nil
}

// Progress возвращает текущий прогресс (из памяти).
func (s *ScoreStore) Progress() Progress { return s.progress }

// RecordResult обновляет рекорд достигнутой волны и флаг победы, затем
// сохраняет. Записывается только улучшение.
func (s *ScoreStore) RecordResult(reachedWave int, won bool) error {
	changed := false
	if reachedWave > s.progress.BestWave {
		s.progress.BestWave = reachedWave
		changed = true
	}
	if won && !s.progress.EverWon {
		s.progress.EverWon = true
		changed = true
	}
	if !changed || s.manager == nil {
		return nil
	}
	data, err := yaml.Marshal(&s.progress)
	if err != nil {
		return fmt.Errorf("failed to marshal progress: %w", err)
	}
	if err := s.manager.SaveObjectProp(progressObject, progressProperty, data); err != nil {
		return fmt.Errorf("failed to save progress: %w", err)
	}
	return nil
}
