package service

import (
	"context"
	"errors"
	"simpleblog/cmd/internal/domain/entity"
	"simpleblog/cmd/internal/domain/sqlite/repository"
	"sort"
)

// fakeNoteRepo is an in-memory NoteRepository
type fakeNoteRepo struct {
	notes  map[int]*entity.Note
	nextID int
	err    error
}

func newFakeNoteRepo(notes ...*entity.Note) *fakeNoteRepo {
	r := &fakeNoteRepo{notes: make(map[int]*entity.Note), nextID: 1}
	for _, n := range notes {
		_ = r.Save(context.Background(), n)
	}
	return r
}

func (r *fakeNoteRepo) FindAllNewestFirst(ctx context.Context) ([]*entity.Note, error) {
	if r.err != nil {
		return nil, r.err
	}
	notes := make([]*entity.Note, 0, len(r.notes))
	for _, n := range r.notes {
		cp := *n
		notes = append(notes, &cp)
	}
	sort.Slice(notes, func(i, j int) bool { return notes[i].ID > notes[j].ID })
	return notes, nil
}

func (r *fakeNoteRepo) FindByID(ctx context.Context, id int) (*entity.Note, error) {
	if r.err != nil {
		return nil, r.err
	}
	n, ok := r.notes[id]
	if !ok {
		return nil, nil
	}
	cp := *n
	return &cp, nil
}

func (r *fakeNoteRepo) Save(ctx context.Context, note *entity.Note) error {
	if r.err != nil {
		return r.err
	}
	if note.ID == 0 {
		note.ID = r.nextID
		r.nextID++
	}
	cp := *note
	r.notes[note.ID] = &cp
	return nil
}

func (r *fakeNoteRepo) UpdateContent(ctx context.Context, id int, title, body, author string, publishedAt int64) error {
	if r.err != nil {
		return r.err
	}
	n, ok := r.notes[id]
	if !ok {
		return repository.ErrNoteNotFound
	}
	n.Title, n.Body, n.Author, n.PublishedAt = title, body, author, publishedAt
	return nil
}

func (r *fakeNoteRepo) IncrementViews(ctx context.Context, id int) error {
	n, ok := r.notes[id]
	if !ok {
		return repository.ErrNoteNotFound
	}
	n.ViewNum++
	return nil
}

// fakeUserRepo is an in-memory UserRepository
type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[string]*entity.User)}
	for _, u := range users {
		r.users[u.Username] = u
	}
	return r
}

func (r *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return r.users[username], nil
}

func (r *fakeUserRepo) FindByPassword(ctx context.Context, password string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Password == password {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.users[user.Username] = user
	return nil
}

// fakeCommentRepo is an in-memory CommentRepository backed by a fakeNoteRepo
type fakeCommentRepo struct {
	notes    *fakeNoteRepo
	comments []*entity.Comment
}

func (r *fakeCommentRepo) FindByNoteID(ctx context.Context, noteID int) ([]*entity.Comment, error) {
	found := []*entity.Comment{}
	for _, c := range r.comments {
		if c.BelongTo == noteID {
			found = append(found, c)
		}
	}
	return found, nil
}

func (r *fakeCommentRepo) CreateAndCount(ctx context.Context, comment *entity.Comment) error {
	n, ok := r.notes.notes[comment.BelongTo]
	if !ok {
		return repository.ErrNoteNotFound
	}
	comment.ID = len(r.comments) + 1
	r.comments = append(r.comments, comment)
	n.CommentNum++
	return nil
}

// brokenVerifier fails every lookup as a locked database would
type brokenVerifier struct{}

func (brokenVerifier) Verify(ctx context.Context, username, password string) (*entity.User, error) {
	return nil, errors.New("database is locked")
}
