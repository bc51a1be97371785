package repository

import (
	"context"
	"homework_check_backend/internal/model"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/samber/lo"
)

// MemoryStorage is a process-local Storage used by tests and the
// database-less dev mode. Values are copied in and out.
type MemoryStorage struct {
	mu          sync.RWMutex
	classes     map[string]model.Class
	folders     map[string]model.Folder
	assignments map[string]model.Assignment
	links       map[string][]string // assignmentID -> classIDs
	keys        map[string][]model.AnswerKey
	submissions map[string]model.Submission
	settings    *model.Settings
	ranges      map[string]model.EncouragementRange
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		classes:     map[string]model.Class{},
		folders:     map[string]model.Folder{},
		assignments: map[string]model.Assignment{},
		links:       map[string][]string{},
		keys:        map[string][]model.AnswerKey{},
		submissions: map[string]model.Submission{},
		ranges:      map[string]model.EncouragementRange{},
	}
}

func stamp(b *model.UUIDBase) {
	b.Touch(time.Now())
}

func maxOrder[T any](items map[string]T, order func(T) int, start int) int {
	if len(items) == 0 {
		return start
	}
	return lo.Max(lo.Map(lo.Values(items), func(it T, _ int) int { return order(it) })) + 1
}

func sorted[T any](items map[string]T, less func(a, b T) bool) []T {
	out := lo.Values(items)
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

func byOrder(ao, bo int, a, b time.Time) bool {
	if ao != bo {
		return ao < bo
	}
	return a.Before(b)
}

// classes

func (m *MemoryStorage) ListClasses(ctx context.Context) ([]model.Class, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return sorted(m.classes, func(a, b model.Class) bool {
		return byOrder(a.SortOrder, b.SortOrder, a.CreatedAt, b.CreatedAt)
	}), nil
}

func (m *MemoryStorage) GetClass(ctx context.Context, id string) (*model.Class, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.classes[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &c, nil
}

func (m *MemoryStorage) CreateClass(ctx context.Context, class *model.Class) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	class.SortOrder = maxOrder(m.classes, func(c model.Class) int { return c.SortOrder }, 1)
	stamp(&class.UUIDBase)
	m.classes[class.ID] = *class
	return nil
}

func (m *MemoryStorage) UpdateClass(ctx context.Context, class *model.Class) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.classes[class.ID]; !ok {
		return ErrNotFound
	}
	stamp(&class.UUIDBase)
	m.classes[class.ID] = *class
	return nil
}

func (m *MemoryStorage) DeleteClass(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.classes[id]; !ok {
		return ErrNotFound
	}
	delete(m.classes, id)
	for aid, classIDs := range m.links {
		m.links[aid] = lo.Without(classIDs, id)
	}
	return nil
}

func (m *MemoryStorage) ReorderClasses(ctx context.Context, ids []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, id := range ids {
		if c, ok := m.classes[id]; ok {
			c.SortOrder = i
			m.classes[id] = c
		}
	}
	return nil
}

// folders

func (m *MemoryStorage) ListFolders(ctx context.Context) ([]model.Folder, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return sorted(m.folders, func(a, b model.Folder) bool {
		return byOrder(a.SortOrder, b.SortOrder, a.CreatedAt, b.CreatedAt)
	}), nil
}

func (m *MemoryStorage) GetFolder(ctx context.Context, id string) (*model.Folder, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	f, ok := m.folders[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &f, nil
}

func (m *MemoryStorage) CreateFolder(ctx context.Context, folder *model.Folder) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	folder.SortOrder = maxOrder(m.folders, func(f model.Folder) int { return f.SortOrder }, 1)
	stamp(&folder.UUIDBase)
	m.folders[folder.ID] = *folder
	return nil
}

func (m *MemoryStorage) UpdateFolder(ctx context.Context, folder *model.Folder) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.folders[folder.ID]; !ok {
		return ErrNotFound
	}
	stamp(&folder.UUIDBase)
	m.folders[folder.ID] = *folder
	return nil
}

func (m *MemoryStorage) DeleteFolder(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.folders[id]; !ok {
		return ErrNotFound
	}
	delete(m.folders, id)
	for aid, a := range m.assignments {
		if a.FolderID != nil && *a.FolderID == id {
			a.FolderID = nil
			m.assignments[aid] = a
		}
	}
	return nil
}

func (m *MemoryStorage) ReorderFolders(ctx context.Context, ids []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, id := range ids {
		if f, ok := m.folders[id]; ok {
			f.SortOrder = i
			m.folders[id] = f
		}
	}
	return nil
}

// assignments

func assignmentLess(a, b model.Assignment) bool {
	return byOrder(a.SortOrder, b.SortOrder, a.CreatedAt, b.CreatedAt)
}

func (m *MemoryStorage) ListAssignments(ctx context.Context) ([]model.Assignment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return sorted(m.assignments, assignmentLess), nil
}

func (m *MemoryStorage) ListAssignmentsByClass(ctx context.Context, classID string) ([]model.Assignment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	linked := lo.PickBy(m.assignments, func(id string, _ model.Assignment) bool {
		return lo.Contains(m.links[id], classID)
	})
	return sorted(linked, assignmentLess), nil
}

func (m *MemoryStorage) GetAssignment(ctx context.Context, id string) (*model.Assignment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	a, ok := m.assignments[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &a, nil
}

func (m *MemoryStorage) CreateAssignment(ctx context.Context, assignment *model.Assignment, classIDs []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	assignment.SortOrder = maxOrder(m.assignments, func(a model.Assignment) int { return a.SortOrder }, 1)
	stamp(&assignment.UUIDBase)
	m.assignments[assignment.ID] = *assignment
	m.links[assignment.ID] = lo.Uniq(classIDs)
	return nil
}

func (m *MemoryStorage) UpdateAssignment(ctx context.Context, assignment *model.Assignment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.assignments[assignment.ID]; !ok {
		return ErrNotFound
	}
	stamp(&assignment.UUIDBase)
	m.assignments[assignment.ID] = *assignment
	return nil
}

func (m *MemoryStorage) DeleteAssignment(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.assignments[id]; !ok {
		return ErrNotFound
	}
	delete(m.assignments, id)
	delete(m.links, id)
	return nil
}

func (m *MemoryStorage) ReorderAssignments(ctx context.Context, ids []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, id := range ids {
		if a, ok := m.assignments[id]; ok {
			a.SortOrder = i
			m.assignments[id] = a
		}
	}
	return nil
}

func (m *MemoryStorage) GetAssignmentClassIDs(ctx context.Context, assignmentID string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := slices.Clone(m.links[assignmentID])
	if ids == nil {
		ids = []string{}
	}
	slices.Sort(ids)
	return ids, nil
}

func (m *MemoryStorage) SetAssignmentClasses(ctx context.Context, assignmentID string, classIDs []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.links[assignmentID] = lo.Uniq(classIDs)
	return nil
}

// answer keys

func (m *MemoryStorage) GetAnswerKeys(ctx context.Context, assignmentID string) ([]model.AnswerKey, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.keys[assignmentID]), nil
}

func (m *MemoryStorage) ReplaceAnswerKeys(ctx context.Context, assignmentID string, keys []model.AnswerKey) ([]model.AnswerKey, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	saved := make([]model.AnswerKey, len(keys))
	for i, k := range keys {
		k.ID = ""
		k.AssignmentID = assignmentID
		if k.QuestionType == "" {
			k.QuestionType = model.MultipleChoice
		}
		stamp(&k.UUIDBase)
		saved[i] = k
	}
	sort.SliceStable(saved, func(i, j int) bool {
		return saved[i].QuestionNumber < saved[j].QuestionNumber
	})
	m.keys[assignmentID] = saved
	return slices.Clone(saved), nil
}

// submissions

func cloneSubmission(s model.Submission) model.Submission {
	s.Answers = slices.Clone(s.Answers)
	s.QuestionNumbers = slices.Clone(s.QuestionNumbers)
	return s
}

func (m *MemoryStorage) filterSubmissions(keep func(model.Submission) bool) []model.Submission {
	picked := lo.PickBy(m.submissions, func(_ string, s model.Submission) bool { return keep(s) })
	out := sorted(picked, func(a, b model.Submission) bool { return a.SubmittedAt.Before(b.SubmittedAt) })
	return lo.Map(out, func(s model.Submission, _ int) model.Submission { return cloneSubmission(s) })
}

func (m *MemoryStorage) CreateSubmission(ctx context.Context, sub *model.Submission) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stamp(&sub.UUIDBase)
	if sub.SubmittedAt.IsZero() {
		sub.SubmittedAt = sub.CreatedAt
	}
	m.submissions[sub.ID] = cloneSubmission(*sub)
	return nil
}

func (m *MemoryStorage) GetSubmission(ctx context.Context, id string) (*model.Submission, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.submissions[id]
	if !ok {
		return nil, ErrNotFound
	}
	s = cloneSubmission(s)
	return &s, nil
}

func (m *MemoryStorage) ListSubmissions(ctx context.Context) ([]model.Submission, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.filterSubmissions(func(model.Submission) bool { return true }), nil
}

func (m *MemoryStorage) GetSubmissionsByAssignment(ctx context.Context, assignmentID string) ([]model.Submission, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.filterSubmissions(func(s model.Submission) bool { return s.AssignmentID == assignmentID }), nil
}

func (m *MemoryStorage) GetSubmissionsByClass(ctx context.Context, classID string) ([]model.Submission, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.filterSubmissions(func(s model.Submission) bool { return s.ClassID == classID }), nil
}

func (m *MemoryStorage) UpdateSubmissionScore(ctx context.Context, id string, score, totalQuestions int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.submissions[id]
	if !ok {
		return ErrNotFound
	}
	s.Score = score
	s.TotalQuestions = totalQuestions
	s.UpdatedAt = time.Now()
	m.submissions[id] = s
	return nil
}

func (m *MemoryStorage) DeleteSubmission(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.submissions[id]; !ok {
		return ErrNotFound
	}
	delete(m.submissions, id)
	return nil
}

// settings

func (m *MemoryStorage) GetSettings(ctx context.Context) (*model.Settings, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.settings == nil {
		return nil, ErrNotFound
	}
	s := *m.settings
	return &s, nil
}

func (m *MemoryStorage) SaveSettings(ctx context.Context, settings *model.Settings) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stamp(&settings.UUIDBase)
	s := *settings
	m.settings = &s
	return nil
}

func (m *MemoryStorage) ListEncouragementRanges(ctx context.Context) ([]model.EncouragementRange, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return sorted(m.ranges, func(a, b model.EncouragementRange) bool {
		return byOrder(a.DisplayOrder, b.DisplayOrder, a.CreatedAt, b.CreatedAt)
	}), nil
}

func (m *MemoryStorage) GetEncouragementRange(ctx context.Context, id string) (*model.EncouragementRange, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.ranges[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &r, nil
}

func (m *MemoryStorage) CreateEncouragementRange(ctx context.Context, r *model.EncouragementRange) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	r.DisplayOrder = maxOrder(m.ranges, func(r model.EncouragementRange) int { return r.DisplayOrder }, 0)
	stamp(&r.UUIDBase)
	m.ranges[r.ID] = *r
	return nil
}

func (m *MemoryStorage) UpdateEncouragementRange(ctx context.Context, r *model.EncouragementRange) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.ranges[r.ID]; !ok {
		return ErrNotFound
	}
	stamp(&r.UUIDBase)
	m.ranges[r.ID] = *r
	return nil
}

func (m *MemoryStorage) DeleteEncouragementRange(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.ranges[id]; !ok {
		return ErrNotFound
	}
	delete(m.ranges, id)
	return nil
}

func (m *MemoryStorage) ReorderEncouragementRanges(ctx context.Context, ids []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, id := range ids {
		if r, ok := m.ranges[id]; ok {
			r.DisplayOrder = i
			m.ranges[id] = r
		}
	}
	return nil
}
