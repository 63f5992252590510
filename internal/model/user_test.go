package model

import (
	"testing"
	"time"
)

func TestUser_Age(t *testing.T) {
	u := &User{DOB: time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC)}

	cases := []struct {
		name  string
		today time.Time
		want  int
	}{
		{"生日前一天", time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC), 33},
		{"生日当天", time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), 34},
		{"生日后一天", time.Date(2024, 6, 16, 0, 0, 0, 0, time.UTC), 34},
		{"生日月份之前", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 33},
		{"生日月份之后", time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), 34},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := u.Age(tc.today); got != tc.want {
				t.Errorf("期望 %d，实际=%d", tc.want, got)
			}
		})
	}
}
