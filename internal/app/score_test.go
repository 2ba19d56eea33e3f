package app

import "testing"

func TestScoreStoreMemoryFallback(t *testing.T) {
	// Без менеджера хранилища прогресс живёт только в памяти, без ошибок.
	s := &ScoreStore{}

	if err := s.RecordResult(3, false); err != nil {
		t.Fatalf("RecordResult: %v", err)
	}
	if got := s.Progress().BestWave; got != 3 {
		t.Errorf("BestWave = %d, want 3", got)
	}

	// Худший результат не затирает рекорд.
	if err := s.RecordResult(2, false); err != nil {
		t.Fatalf("RecordResult: %v", err)
	}
	if got := s.Progress().BestWave; got != 3 {
		t.Errorf("BestWave after worse run = %d, want 3", got)
	}

	if s.Progress().EverWon {
		t.Error("EverWon set without a win")
	}
	if err := s.RecordResult(1, true); err != nil {
		t.Fatalf("RecordResult: %v", err)
	}
	if !s.Progress().EverWon {
		t.Error("EverWon not set after a win")
	}
	if got := s.Progress().BestWave; got != 3 {
		t.Errorf("BestWave = %d, want 3", got)
	}
}
