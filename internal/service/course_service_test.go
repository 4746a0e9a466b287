package service

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/google/uuid"
)

type fakeProgressRepo struct {
	parts map[string][]int64
}

func newFakeProgressRepo() *fakeProgressRepo {
	return &fakeProgressRepo{parts: map[string][]int64{}}
}

func (f *fakeProgressRepo) AddPart(ctx context.Context, userID uuid.UUID, course string, part int) ([]int64, error) {
	key := userID.String() + "/" + course
	for _, existing := range f.parts[key] {
		if existing == int64(part) {
			return append([]int64(nil), f.parts[key]...), nil
		}
	}
	f.parts[key] = append(f.parts[key], int64(part))
	return append([]int64(nil), f.parts[key]...), nil
}

func TestSaveProgressAppendsToSet(t *testing.T) {
	svc := NewCourseService(newFakeProgressRepo())
	userID := uuid.New()

	completed, err := svc.SaveProgress(context.Background(), userID, "spanish-basics", 1)
	if err != nil {
		t.Fatalf("SaveProgress returned error: %v", err)
	}
	if !reflect.DeepEqual(completed, []int64{1}) {
		t.Fatalf("expected [1], got %v", completed)
	}

	completed, err = svc.SaveProgress(context.Background(), userID, "spanish-basics", 3)
	if err != nil {
		t.Fatalf("SaveProgress returned error: %v", err)
	}
	if !reflect.DeepEqual(completed, []int64{1, 3}) {
		t.Fatalf("expected [1 3], got %v", completed)
	}

	// Re-completing a part must not duplicate it.
	completed, err = svc.SaveProgress(context.Background(), userID, "spanish-basics", 1)
	if err != nil {
		t.Fatalf("SaveProgress returned error: %v", err)
	}
	if !reflect.DeepEqual(completed, []int64{1, 3}) {
		t.Fatalf("expected [1 3] after repeat, got %v", completed)
	}
}

func TestSaveProgressRequiresCourse(t *testing.T) {
	svc := NewCourseService(newFakeProgressRepo())

	if _, err := svc.SaveProgress(context.Background(), uuid.New(), "   ", 1); !errors.Is(err, ErrInvalidCourse) {
		t.Fatalf("expected ErrInvalidCourse, got %v", err)
	}
}

func TestSaveProgressScopedPerCourse(t *testing.T) {
	svc := NewCourseService(newFakeProgressRepo())
	userID := uuid.New()

	if _, err := svc.SaveProgress(context.Background(), userID, "spanish-basics", 1); err != nil {
		t.Fatalf("SaveProgress returned error: %v", err)
	}
	completed, err := svc.SaveProgress(context.Background(), userID, "french-basics", 7)
	if err != nil {
		t.Fatalf("SaveProgress returned error: %v", err)
	}
	if !reflect.DeepEqual(completed, []int64{7}) {
		t.Fatalf("expected progress tracked per course, got %v", completed)
	}
}
