package slug_test

import (
	"testing"

	"coolschool-backend/internal/slug"

	"github.com/stretchr/testify/require"
)

func TestMake(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Hệ quốc tế Anh - Nhật", "he-quoc-te-anh-nhat"},
		{"Hệ đào tạo song ngữ", "he-dao-tao-song-ngu"},
		{"Chương trình Văn - Thể - Mỹ", "chuong-trinh-van-the-my"},
		{"Đào tạo đặc biệt", "dao-tao-dac-biet"},
		{"Hello, World!", "hello-world"},
		{"  spaced   out  ", "spaced-out"},
		{"T", "t"},
		{"", ""},
		{"!!!", ""},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, slug.Make(tc.title), "title %q", tc.title)
	}
}

func TestMakeIdempotent(t *testing.T) {
	titles := []string{
		"Hệ quốc tế Anh - Nhật",
		"Chương trình học chuẩn quốc tế",
		"already-slugified-input",
		"Mixed Case With Đ",
	}

	for _, title := range titles {
		once := slug.Make(title)
		require.Equal(t, once, slug.Make(once), "title %q", title)
	}
}
