package memory

import (
	"time"

	"github.com/google/uuid"

	"github.com/mahalla-hub/community-services/internal/model"
)

// Seed fills an empty store with demo fixtures so the memory backend is
// usable out of the box. Safe to call once at startup in memory mode.
func (s *Store) Seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()

	courses := []model.Course{
		{
			Title:         "Web dasturlash asoslari",
			Description:   "HTML, CSS va JavaScript asoslari bo'yicha amaliy kurs",
			StartDate:     "2023-06-15",
			EndDate:       "2023-08-15",
			Location:      "Mahalla markazi",
			Slots:         20,
			EnrolledCount: 12,
			ImageURL:      "https://placehold.co/600x400?text=Web+Dasturlash",
		},
		{
			Title:         "Tikuvchilik va dizayn",
			Description:   "Kiyim tikish va dizayn qilish bo'yicha asosiy bilimlar",
			StartDate:     "2023-06-20",
			EndDate:       "2023-07-25",
			Location:      "Hunarmand ustaxonasi",
			Slots:         15,
			EnrolledCount: 8,
			ImageURL:      "https://placehold.co/600x400?text=Tikuvchilik",
		},
		{
			Title:         "Pazandachilik san'ati",
			Description:   "Milliy va zamonaviy taomlarni tayyorlash",
			StartDate:     "2023-07-01",
			EndDate:       "2023-08-01",
			Location:      "Mahalla oshxonasi",
			Slots:         12,
			EnrolledCount: 10,
			ImageURL:      "https://placehold.co/600x400?text=Pazandachilik",
		},
	}
	for i := range courses {
		c := courses[i]
		c.ID = uuid.New().String()
		c.CreatedAt = now.Add(-time.Duration(i) * time.Minute)
		s.courses[c.ID] = &c
	}

	entrepreneurs := []model.Entrepreneur{
		{
			Name:         "Aziz Rahimov",
			BusinessName: "AR Digital Solutions",
			Category:     "IT xizmatlari",
			Description:  "Kichik bizneslar uchun web saytlar va mobil ilovalar yaratish",
			ContactInfo:  "+998 90 123 4567",
			JoinDate:     "2022-10-15",
		},
		{
			Name:         "Nilufar Karimova",
			BusinessName: "Nil Fashion",
			Category:     "Tikuvchilik",
			Description:  "Milliy va zamonaviy liboslarni tikish va sotish",
			ContactInfo:  "+998 91 234 5678",
			JoinDate:     "2021-08-20",
		},
	}
	for i := range entrepreneurs {
		e := entrepreneurs[i]
		e.ID = uuid.New().String()
		e.CreatedAt = now.Add(-time.Duration(i) * time.Minute)
		s.entrepreneurs[e.ID] = &e
	}

	people := []model.UnemployedPerson{
		{
			Name:             "Jasur Toshpulatov",
			Age:              24,
			Skills:           []string{"Kompyuter savodxonligi", "Ingliz tili"},
			Education:        "Oliy ma'lumot, Iqtisodiyot",
			ContactInfo:      "+998 93 345 6789",
			RegistrationDate: "2023-03-10",
			Status:           model.StatusInTraining,
		},
		{
			Name:             "Malika Sharipova",
			Age:              32,
			Skills:           []string{"Tikuvchilik", "Sotuvchilik"},
			Education:        "O'rta maxsus",
			ContactInfo:      "+998 94 456 7890",
			RegistrationDate: "2023-02-15",
			Status:           model.StatusActive,
		},
		{
			Name:             "Bekzod Yuldashev",
			Age:              28,
			Skills:           []string{"Haydovchilik", "Qurilish ishlari"},
			Education:        "O'rta maxsus",
			ContactInfo:      "+998 95 567 8901",
			RegistrationDate: "2023-01-20",
			Status:           model.StatusEmployed,
		},
	}
	for i := range people {
		p := people[i]
		p.ID = uuid.New().String()
		p.CreatedAt = now.Add(-time.Duration(i) * time.Minute)
		s.unemployed[p.ID] = &p
	}
}
