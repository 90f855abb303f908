package memory

import (
	"context"
	"sort"

	"retailops/internal/core/domain/model/user"
	"retailops/internal/pkg/errs"
)

type userRepository struct {
	uow *UnitOfWork
}

func userKey(username string) string { return "user:" + username }

func (r *userRepository) Add(_ context.Context, u *user.User) error {
	if err := u.Validate(); err != nil {
		return err
	}
	row := fromUser(u)
	return r.uow.write(func(t *tx) error {
		t.lock(userKey(row.username))
		if _, ok := r.lookup(t, row.username); ok {
			return errs.NewValueIsInvalidErrorWithCause("username", user.ErrUsernameTaken)
		}
		delete(t.deletedUsers, row.username)
		t.users[row.username] = row
		return nil
	})
}

func (r *userRepository) Get(_ context.Context, username string) (*user.User, error) {
	name := user.NormalizeUsername(username)
	row, ok := r.lookup(r.uow.tx, name)
	if !ok {
		return nil, errs.NewObjectNotFoundError("username", name)
	}
	return toUser(row)
}

func (r *userRepository) Delete(_ context.Context, username string) error {
	name := user.NormalizeUsername(username)
	return r.uow.write(func(t *tx) error {
		t.lock(userKey(name))
		if _, ok := r.lookup(t, name); !ok {
			return errs.NewObjectNotFoundError("username", name)
		}
		delete(t.users, name)
		t.deletedUsers[name] = struct{}{}
		return nil
	})
}

func (r *userRepository) List(_ context.Context) ([]*user.User, error) {
	rows := r.rows()
	sort.Slice(rows, func(i, j int) bool { return rows[i].username < rows[j].username })

	out := make([]*user.User, 0, len(rows))
	for _, row := range rows {
		u, err := toUser(row)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, nil
}

func (r *userRepository) Count(_ context.Context) (int, error) {
	return len(r.rows()), nil
}

func (r *userRepository) lookup(t *tx, username string) (userRow, bool) {
	if t != nil {
		if _, deleted := t.deletedUsers[username]; deleted {
			return userRow{}, false
		}
		if row, ok := t.users[username]; ok {
			return row, true
		}
	}
	s := r.uow.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	row, ok := s.users[username]
	return row, ok
}

func (r *userRepository) rows() []userRow {
	s := r.uow.store
	s.mu.RLock()
	merged := make(map[string]userRow, len(s.users))
	for name, row := range s.users {
		merged[name] = row
	}
	s.mu.RUnlock()

	if t := r.uow.tx; t != nil {
		for name := range t.deletedUsers {
			delete(merged, name)
		}
		for name, row := range t.users {
			merged[name] = row
		}
	}

	out := make([]userRow, 0, len(merged))
	for _, row := range merged {
		out = append(out, row)
	}
	return out
}
