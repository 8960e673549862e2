package store

import "strings"

// Migrate upgrades a loosely-typed state document in place. Every step is
// additive and idempotent: running Migrate on an already-migrated document
// changes nothing, and documents from the two prior schema shapes
// (string notes, tasks without a budget field) decode identically after it.
func Migrate(doc map[string]interface{}) {
	migrateLegacyKeys(doc)
	migrateNotes(doc)
	migrateTaskBudgets(doc)
}

// migrateLegacyKeys renames fields from the original single-file config.
func migrateLegacyKeys(doc map[string]interface{}) {
	if daily, ok := doc["daily_state"].(map[string]interface{}); ok {
		renameKey(daily, "last_login_date", "last_reset_date")
		renameKey(daily, "habit_streak", "habit_status")
	}
	if persistent, ok := doc["persistent_data"].(map[string]interface{}); ok {
		renameKey(persistent, "brain_dump_content", "brain_dump_notes")
		renameKey(persistent, "parking_lot_links", "saved_links")
	}
}

func renameKey(m map[string]interface{}, from, to string) {
	if _, exists := m[to]; exists {
		return
	}
	if v, ok := m[from]; ok {
		m[to] = v
		delete(m, from)
	}
}

// migrateNotes converts the legacy single-string brain dump into a list:
// split on newlines, strip "- " bullet markers, drop blank lines.
func migrateNotes(doc map[string]interface{}) {
	persistent, ok := doc["persistent_data"].(map[string]interface{})
	if !ok {
		return
	}
	raw, ok := persistent["brain_dump_notes"].(string)
	if !ok {
		return // already a list (or absent)
	}

	notes := []interface{}{}
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "- "))
		if line != "" {
			notes = append(notes, line)
		}
	}
	persistent["brain_dump_notes"] = notes
}

// migrateTaskBudgets gives every task slot an explicit budget field so the
// pre-budget schema decodes the same as the current one.
func migrateTaskBudgets(doc map[string]interface{}) {
	daily, ok := doc["daily_state"].(map[string]interface{})
	if !ok {
		return
	}
	tasks, ok := daily["tasks"].([]interface{})
	if !ok {
		return
	}
	for _, t := range tasks {
		task, ok := t.(map[string]interface{})
		if !ok {
			continue
		}
		if _, exists := task["budget"]; !exists {
			task["budget"] = nil
		}
	}
}
