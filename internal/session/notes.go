package session

import (
	"sort"
	"strconv"
	"strings"

	"github.com/julianstephens/dailydash/internal/apperr"
	"github.com/julianstephens/dailydash/internal/models"
)

// --- brain dump notes ---

// AddNote appends a note; insertion order is preserved.
func (s *Session) AddNote(text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return apperr.Invalidf("note must not be empty")
	}
	return s.mutate(func(a *models.Aggregate) error {
		a.PersistentData.BrainDumpNotes = append(a.PersistentData.BrainDumpNotes, text)
		return nil
	})
}

// Notes returns all notes in insertion order.
func (s *Session) Notes() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.agg.PersistentData.BrainDumpNotes...)
}

// DeleteNotes removes the notes named by a 1-based id spec such as "1,3,5-7".
// Invalid tokens and out-of-range ids are dropped from the delete set rather
// than failing the operation; the remaining ids are removed in one pass. It
// returns the number of notes deleted.
func (s *Session) DeleteNotes(spec string) (int, error) {
	if strings.TrimSpace(spec) == "" {
		return 0, apperr.Invalidf("empty id spec")
	}
	deleted := 0
	err := s.mutate(func(a *models.Aggregate) error {
		ids := parseIDSpec(spec, len(a.PersistentData.BrainDumpNotes))
		if len(ids) == 0 {
			return nil
		}
		drop := make(map[int]bool, len(ids))
		for _, id := range ids {
			drop[id] = true
		}
		kept := a.PersistentData.BrainDumpNotes[:0]
		for i, note := range a.PersistentData.BrainDumpNotes {
			if !drop[i+1] {
				kept = append(kept, note)
			}
		}
		deleted = len(a.PersistentData.BrainDumpNotes) - len(kept)
		a.PersistentData.BrainDumpNotes = kept
		return nil
	})
	return deleted, err
}

// ClearNotes removes every note.
func (s *Session) ClearNotes() error {
	return s.mutate(func(a *models.Aggregate) error {
		a.PersistentData.BrainDumpNotes = []string{}
		return nil
	})
}

// parseIDSpec expands a spec of single ids, comma lists and inclusive ranges
// into the sorted set of valid ids in [1, max]. Anything unparseable or out
// of range is silently ignored.
func parseIDSpec(spec string, max int) []int {
	set := map[int]bool{}
	for _, token := range strings.Split(spec, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		if lo, hi, ok := strings.Cut(token, "-"); ok {
			start, err1 := strconv.Atoi(strings.TrimSpace(lo))
			end, err2 := strconv.Atoi(strings.TrimSpace(hi))
			if err1 != nil || err2 != nil {
				continue
			}
			for i := start; i <= end; i++ {
				if i >= 1 && i <= max {
					set[i] = true
				}
			}
			continue
		}
		id, err := strconv.Atoi(token)
		if err != nil || id < 1 || id > max {
			continue
		}
		set[id] = true
	}

	ids := make([]int, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// --- saved links ---

// AddLink appends a URL to the parking lot.
func (s *Session) AddLink(url string) error {
	url = strings.TrimSpace(url)
	if url == "" {
		return apperr.Invalidf("url must not be empty")
	}
	return s.mutate(func(a *models.Aggregate) error {
		a.PersistentData.SavedLinks = append(a.PersistentData.SavedLinks, url)
		return nil
	})
}

// Links returns all saved links in insertion order.
func (s *Session) Links() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.agg.PersistentData.SavedLinks...)
}

// Link resolves a 1-based link id without mutating anything.
func (s *Session) Link(id int) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id < 1 || id > len(s.agg.PersistentData.SavedLinks) {
		return "", apperr.NotFoundf("link %d", id)
	}
	return s.agg.PersistentData.SavedLinks[id-1], nil
}

// DeleteLink removes a link by its 1-based position.
func (s *Session) DeleteLink(id int) (string, error) {
	var url string
	err := s.mutate(func(a *models.Aggregate) error {
		if id < 1 || id > len(a.PersistentData.SavedLinks) {
			return apperr.NotFoundf("link %d", id)
		}
		url = a.PersistentData.SavedLinks[id-1]
		a.PersistentData.SavedLinks = append(a.PersistentData.SavedLinks[:id-1], a.PersistentData.SavedLinks[id:]...)
		return nil
	})
	return url, err
}
