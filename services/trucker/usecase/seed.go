package usecase

import (
	"github.com/truckerru/backend/internal/pkg/models"
	"go.mongodb.org/mongo-driver/bson"
)

// Starter content inserted into empty collections on first read. The
// sets are fixed; seeding inserts them one record at a time.

func quizSeed() []interface{} {
	return []interface{}{
		&models.QuizQuestion{
			Question:     "На каком расстоянии до железнодорожного переезда устанавливается предупреждающий знак?",
			Options:      []string{"50 м", "150-300 м", "500 м", "1 км"},
			CorrectIndex: 1,
			Topic:        "ПДД",
		},
		&models.QuizQuestion{
			Question:     "Какая федеральная трасса соединяет Москву и Санкт-Петербург?",
			Options:      []string{"М7", "М10/М11", "Р23", "А108"},
			CorrectIndex: 1,
			Topic:        "География",
		},
		&models.QuizQuestion{
			Question:     "Что означает сплошная желтая линия у бордюра?",
			Options:      []string{"Стоянка запрещена", "Остановка запрещена", "Дорога с односторонним движением", "Обочина"},
			CorrectIndex: 1,
			Topic:        "ПДД",
		},
	}
}

func historySeed() []interface{} {
	return []interface{}{
		&models.TruckHistory{
			Title:   "КамАЗ: легенда отечественных дорог",
			Era:     "1970-е",
			Content: "История становления КамАЗа и ралли «Дакар».",
		},
		&models.TruckHistory{
			Title:   "МАЗ и дальние рейсы СССР",
			Era:     "1960-80",
			Content: "Как строилась логистика по Союзу и культ дальнобоя.",
		},
	}
}

func guideSeed() []interface{} {
	return []interface{}{
		&models.GuideEntry{
			Title:   "Подготовка к рейсу",
			Content: "Чек-лист: резина, огнетушитель, аптечка, инструменты.",
		},
		&models.GuideEntry{
			Title:   "Экономия топлива",
			Content: "Поддерживайте обороты в зелёной зоне, планируйте остановки.",
		},
		&models.GuideEntry{
			Title:   "Парковки и стоянки",
			Content: "Список безопасных стоянок вдоль М4 и М7.",
		},
	}
}

// newsPlaceholders fabricates the response-only news items returned
// while the collection is empty. They already carry public ids and are
// never written to the store.
func newsPlaceholders() []bson.M {
	return []bson.M{
		{
			"id":      "seed1",
			"title":   "Ремонт на М5",
			"summary": "Ночные перекрытия на 120-125 км",
			"source":  "rosavtodor",
		},
		{
			"id":      "seed2",
			"title":   "Погода на трассах",
			"summary": "Гололёд на Урале, соблюдайте дистанцию",
		},
	}
}
