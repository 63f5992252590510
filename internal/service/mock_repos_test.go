package service

import (
	"context"
	"sort"
	"strings"

	"gorm.io/gorm"

	"face-attendance/backend/internal/model"
)

// ── Mock UserRepository ──

type mockUserRepo struct {
	users map[string]*model.User // key: ID
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if user.ID == "" {
		user.ID = "uid-" + user.RegNo
	}
	cp := *user
	m.users[user.ID] = &cp
	return nil
}

func (m *mockUserRepo) GetByRegNo(_ context.Context, regNo string) (*model.User, error) {
	for _, u := range m.users {
		if u.RegNo == regNo {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByName(_ context.Context, name string) (*model.User, error) {
	for _, u := range m.users {
		if strings.EqualFold(u.Name, name) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) List(_ context.Context) ([]model.User, error) {
	result := make([]model.User, 0, len(m.users))
	for _, u := range m.users {
		result = append(result, *u)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].RegNo < result[j].RegNo })
	return result, nil
}

func (m *mockUserRepo) ListRegNos(_ context.Context, prefix string) ([]string, error) {
	var regNos []string
	for _, u := range m.users {
		if strings.HasPrefix(u.RegNo, prefix) {
			regNos = append(regNos, u.RegNo)
		}
	}
	return regNos, nil
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	cp := *user
	m.users[user.ID] = &cp
	return nil
}

func (m *mockUserRepo) IncrementAttendance(_ context.Context, id string) (*model.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	u.AttendanceCount++
	cp := *u
	return &cp, nil
}

func (m *mockUserRepo) Delete(_ context.Context, regNo string) error {
	for id, u := range m.users {
		if u.RegNo == regNo {
			delete(m.users, id)
			return nil
		}
	}
	return nil
}
