package store

import (
	"time"

	"coolschool-backend/internal/models"
)

// seedNews returns the initial article set shown on the website before any
// editor-created content exists.
func seedNews() []models.News {
	launched := time.Date(2019, 2, 22, 0, 0, 0, 0, time.UTC)
	return []models.News{
		{
			ID:          1,
			Title:       "Hệ quốc tế Anh - Nhật",
			Slug:        "he-quoc-te-anh-nhat",
			Date:        "2019-02-22",
			Author:      "Cool Team",
			Image:       "https://bizweb.dktcdn.net/thumb/large/100/347/562/articles/1.jpg?v=1550778252097",
			Description: "Bên cạnh tiếng Anh, tiếng Nhật cũng là một trong những ngôn ngữ của thời kỳ hội nhập toàn cầu.",
			Content:     "Bên cạnh tiếng Anh, tiếng Nhật cũng là một trong những ngôn ngữ của thời kỳ hội nhập toàn cầu. Trường Mầm non Quốc tế Cool School đã triển khai chương trình đào tạo song ngữ Anh - Nhật để giúp các em học sinh có thể tiếp cận với văn hóa và ngôn ngữ Nhật Bản một cách tự nhiên và hiệu quả nhất.",
			Status:      "published",
			Category:    "program",
			CreatedAt:   launched,
			UpdatedAt:   launched,
		},
		{
			ID:          2,
			Title:       "Hệ đào tạo song ngữ",
			Slug:        "he-dao-tao-song-ngu",
			Date:        "2019-02-22",
			Author:      "Cool Team",
			Image:       "https://bizweb.dktcdn.net/thumb/large/100/347/562/articles/6.jpg?v=1550778312287",
			Description: "Với mong muốn giúp trẻ đa dạng ngôn ngữ trong thời kỳ hội nhập, Trường Mầm non Quốc tế Cool School đã xây dựng hệ đào tạo song ngữ.",
			Content:     "Với mong muốn giúp trẻ đa dạng ngôn ngữ trong thời kỳ hội nhập, Trường Mầm non Quốc tế Cool School đã xây dựng hệ đào tạo song ngữ với môi trường học tập tự nhiên, giúp các em tiếp thu kiến thức một cách hiệu quả nhất.",
			Status:      "published",
			Category:    "program",
			CreatedAt:   launched,
			UpdatedAt:   launched,
		},
		{
			ID:          3,
			Title:       "Hệ quốc tế Anh - Anh",
			Slug:        "he-quoc-te-anh-anh",
			Date:        "2019-02-22",
			Author:      "Cool Team",
			Image:       "https://bizweb.dktcdn.net/thumb/large/100/347/562/articles/9.jpg?v=1550778282473",
			Description: "Trong xu thế tiếng Anh đã trở thành ngôn ngữ toàn cầu, ngay từ khi còn nhỏ, các bậc phụ huynh đã quan tâm đến việc dạy tiếng Anh cho con.",
			Content:     "Trong xu thế tiếng Anh đã trở thành ngôn ngữ toàn cầu, ngay từ khi còn nhỏ, các bậc phụ huynh đã quan tâm đến việc dạy tiếng Anh cho con. Chương trình Anh - Anh của Cool School được thiết kế để tạo môi trường học tập hoàn toàn bằng tiếng Anh.",
			Status:      "published",
			Category:    "program",
			CreatedAt:   launched,
			UpdatedAt:   launched,
		},
		{
			ID:          4,
			Title:       "Chương trình học chuẩn quốc tế",
			Slug:        "chuong-trinh-hoc-chuan-quoc-te",
			Date:        "2019-02-22",
			Author:      "Cool Team",
			Image:       "https://bizweb.dktcdn.net/thumb/large/100/347/562/articles/7.jpg?v=1550779824993",
			Description: "Được thiết kế và triển khai theo triết lý giáo dục của tiến sĩ Maria Montessori (31/8/1870 – 6/5/1952).",
			Content:     "Được thiết kế và triển khai theo triết lý giáo dục của tiến sĩ Maria Montessori (31/8/1870 – 6/5/1952), chương trình giáo dục của Cool School tập trung vào việc phát triển toàn diện các kỹ năng của trẻ thông qua các hoạt động thực hành.",
			Status:      "published",
			Category:    "program",
			CreatedAt:   launched,
			UpdatedAt:   launched,
		},
		{
			ID:          5,
			Title:       "Chương trình Văn - Thể - Mỹ",
			Slug:        "chuong-trinh-van-the-my",
			Date:        "2019-02-22",
			Author:      "Cool Team",
			Image:       "https://bizweb.dktcdn.net/thumb/large/100/347/562/articles/8.jpg?v=1550779730693",
			Description: "Cùng với sự phát triển của chương trình học thuật, chương trình phát triển Văn – Thể – Mỹ cũng là một phần quan trọng.",
			Content:     "Cùng với sự phát triển của chương trình học thuật, chương trình phát triển Văn – Thể – Mỹ cũng là một phần quan trọng trong việc giáo dục toàn diện cho trẻ. Chương trình này giúp trẻ phát triển các kỹ năng sáng tạo, thể chất và thẩm mỹ.",
			Status:      "published",
			Category:    "program",
			CreatedAt:   launched,
			UpdatedAt:   launched,
		},
		{
			ID:          6,
			Title:       "Chương trình học văn hóa nhật",
			Slug:        "chuong-trinh-hoc-van-hoa-nhat",
			Date:        "2019-02-22",
			Author:      "Cool Team",
			Image:       "https://bizweb.dktcdn.net/thumb/large/100/347/562/articles/3.jpg?v=1550779664717",
			Description: "Kỹ năng sống là một trong những kiến thức nền tảng quan trọng nhất, quyết định sự tồn tại, phát triển.",
			Content:     "Kỹ năng sống là một trong những kiến thức nền tảng quan trọng nhất, quyết định sự tồn tại, phát triển của con người trong xã hội hiện đại. Chương trình văn hóa Nhật của Cool School giúp trẻ học được những kỹ năng sống quý báu từ văn hóa Nhật Bản.",
			Status:      "published",
			Category:    "culture",
			CreatedAt:   launched,
			UpdatedAt:   launched,
		},
	}
}

// seedContacts returns the sample inbox written when no contact data file
// exists yet.
func seedContacts() []models.Contact {
	phone1 := "0912345678"
	phone2 := "0987654321"
	return []models.Contact{
		{
			ID:        1,
			Name:      "Nguyễn Văn A",
			Email:     "nguyenvana@email.com",
			Subject:   "Tư vấn chương trình học",
			Body:      "Tôi muốn tìm hiểu về chương trình tiếng Anh cho trẻ em",
			Phone:     &phone1,
			Status:    models.ContactStatusNew,
			CreatedAt: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			UpdatedAt: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:        2,
			Name:      "Trần Thị B",
			Email:     "tranthib@email.com",
			Subject:   "Đăng ký học thử",
			Body:      "Con tôi 8 tuổi, muốn đăng ký học thử lớp tiếng Anh",
			Phone:     &phone2,
			Status:    models.ContactStatusProcessing,
			CreatedAt: time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC),
			UpdatedAt: time.Date(2024, 1, 17, 0, 0, 0, 0, time.UTC),
		},
	}
}
