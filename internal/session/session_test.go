package session

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func touch(t *testing.T, dir, name string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte("x"), 0600); err != nil {
		t.Fatal(err)
	}
	return p
}

func exists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}

func TestCreateAndGet(t *testing.T) {
	sm := NewSessionManager()
	a, b := sm.CreateSession(), sm.CreateSession()
	if a.ID == b.ID {
		t.Fatalf("duplicate session id %q", a.ID)
	}
	got, ok := sm.GetSession(a.ID)
	if !ok || got != a {
		t.Fatalf("GetSession(%q) = %v, %v", a.ID, got, ok)
	}
	if a.Status() != StatusIdle {
		t.Errorf("new session status = %q, want idle", a.Status())
	}
	sm.DeleteSession(a.ID)
	if _, ok := sm.GetSession(a.ID); ok {
		t.Error("session still present after delete")
	}
	if sm.Len() != 1 {
		t.Errorf("Len = %d, want 1", sm.Len())
	}
}

func TestFiles(t *testing.T) {
	s := NewSessionManager().CreateSession()
	s.AddFile("a")
	s.AddFile("b")

	files := s.GetFiles()
	files[0] = "changed"
	if diff := cmp.Diff([]string{"a", "b"}, s.GetFiles()); diff != "" {
		t.Errorf("GetFiles leaked internal slice (-want +got):\n%s", diff)
	}

	s.SetFiles([]string{"b", "a"})
	if diff := cmp.Diff([]string{"b", "a"}, s.GetFiles()); diff != "" {
		t.Errorf("files after SetFiles (-want +got):\n%s", diff)
	}
	if !s.HasFile("a") || s.HasFile("c") {
		t.Error("HasFile mismatch")
	}
}

func TestMergeStatus(t *testing.T) {
	s := NewSessionManager().CreateSession()

	var wg sync.WaitGroup
	var mu sync.Mutex
	started := 0
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, ok := s.BeginMerge(); ok {
				mu.Lock()
				started++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	if started != 1 {
		t.Fatalf("%d merges started, want 1", started)
	}

	s.EndMerge("")
	if s.Status() != StatusIdle {
		t.Fatalf("status after failed merge = %q, want idle", s.Status())
	}

	if _, ok := s.BeginMerge(); !ok {
		t.Fatal("could not restart merge after failure")
	}
	s.EndMerge("out.pdf")
	if status, ok := s.BeginMerge(); ok || status != StatusDone {
		t.Errorf("BeginMerge after done = %q, %v", status, ok)
	}
	if s.OutputFile() != "out.pdf" {
		t.Errorf("OutputFile = %q", s.OutputFile())
	}
}

func TestSetOutputFileRemovesPrevious(t *testing.T) {
	dir := t.TempDir()
	first, second := touch(t, dir, "first.pdf"), touch(t, dir, "second.pdf")

	s := NewSessionManager().CreateSession()
	s.SetOutputFile(first)
	s.SetOutputFile(second)
	if exists(first) {
		t.Error("previous output file was not removed")
	}
	if !exists(second) || s.OutputFile() != second {
		t.Error("current output file missing")
	}
}

func TestSweep(t *testing.T) {
	dir := t.TempDir()
	sm := NewSessionManager()

	old := sm.CreateSession()
	old.CreatedAt = time.Now().Add(-time.Hour)
	upload := touch(t, dir, "upload.pdf")
	old.AddFile(upload)
	old.SetOutputFile(touch(t, dir, "merged.pdf"))

	fresh := sm.CreateSession()
	kept := touch(t, dir, "kept.pdf")
	fresh.AddFile(kept)

	if n := sm.Sweep(time.Now(), 5*time.Minute); n != 1 {
		t.Fatalf("Sweep removed %d sessions, want 1", n)
	}
	if _, ok := sm.GetSession(old.ID); ok {
		t.Error("expired session still present")
	}
	if _, ok := sm.GetSession(fresh.ID); !ok {
		t.Error("fresh session was swept")
	}
	if exists(upload) || exists(filepath.Join(dir, "merged.pdf")) {
		t.Error("expired session files were not removed")
	}
	if !exists(kept) {
		t.Error("fresh session file was removed")
	}
}
