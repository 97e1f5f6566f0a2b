package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	_ "github.com/lib/pq"
)

// seedQuestion описывает одну загадку кампании
type seedQuestion struct {
	Day        int
	Text       string
	Hint       string
	Answer     string
	Difficulty int
	ImageURL   string
}

// Загадки 10-дневной кампании. Ответы хранятся как есть,
// нормализация (trim + lowercase) выполняется при проверке.
var questions = []seedQuestion{
	{1, "Я — столица страны, которую называют Пятиугольником. Меня основали на семи холмах, и все дороги ведут ко мне. Кто я?", "Вечный город", "Рим", 1, ""},
	{2, "Город огней ждёт вас у реки, чьё имя носит и департамент. Железная дама укажет путь.", "Французская столица", "Париж", 1, ""},
	{3, "Туманный город, где Биг-Бен отбивает часы над рекой, которая течёт вспять дважды в день.", "Столица на Темзе", "Лондон", 2, ""},
	{4, "Город, где восходит солнце раньше всех столиц G7. Его старое имя — Эдо.", "Столица Японии", "Токио", 2, ""},
	{5, "Большое яблоко никогда не спит. Статуя с факелом встречает прибывающих.", "Самый большой город США", "Нью-Йорк", 3, ""},
	{6, "Город на двух континентах, бывший Константинополь.", "Мост между Европой и Азией", "Стамбул", 3, ""},
	{7, "Самый южный город-миллионник у подножия Столовой горы.", "Законодательная столица ЮАР", "Кейптаун", 4, ""},
	{8, "Город карнавала под распростёртыми руками статуи на горе Корковадо.", "Бывшая столица Бразилии", "Рио-де-Жанейро", 4, ""},
	{9, "Самая высокогорная столица мира, рядом озеро Титикака.", "Фактическая столица Боливии", "Ла-Пас", 5, ""},
	{10, "Ледяной континент без столицы — но станция имени южного полюса носит имена двух первооткрывателей.", "Станция на Южном полюсе", "Амундсен-Скотт", 5, ""},
}

func main() {
	connStr := flag.String("dsn", "", "PostgreSQL connection string (overrides env)")
	startDate := flag.String("start", "", "campaign start date in YYYY-MM-DD format")
	flag.Parse()

	start, err := time.ParseInLocation("2006-01-02", firstNonEmpty(*startDate, os.Getenv("GAME_START_DATE"), "2026-09-01"), time.Local)
	if err != nil {
		log.Fatalf("Invalid start date: %v", err)
	}

	dsn := *connStr
	if dsn == "" {
		dsn = os.Getenv("DATABASE_URL")
	}
	if dsn == "" {
		dsn = "host=localhost port=5432 user=postgres password=123456 dbname=hunt_db sslmode=disable"
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal(err)
	}

	tx, err := db.Begin()
	if err != nil {
		log.Fatal(err)
	}
	defer tx.Rollback()

	// Кириллица в текстах загадок
	if _, err := tx.Exec("SET CLIENT_ENCODING TO 'UTF8'"); err != nil {
		log.Fatalf("Failed to set client encoding: %v", err)
	}

	// Upsert по дню: повторный запуск обновляет тексты, не плодя дубликаты
	const query = `
		INSERT INTO questions (day, text, hint, answer, difficulty, image_url, unlocks_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		ON CONFLICT (day) DO UPDATE SET
			text = EXCLUDED.text,
			hint = EXCLUDED.hint,
			answer = EXCLUDED.answer,
			difficulty = EXCLUDED.difficulty,
			image_url = EXCLUDED.image_url,
			unlocks_at = EXCLUDED.unlocks_at,
			updated_at = NOW()`

	for _, q := range questions {
		unlocksAt := start.AddDate(0, 0, q.Day-1)
		if _, err := tx.Exec(query, q.Day, q.Text, q.Hint, q.Answer, q.Difficulty, q.ImageURL, unlocksAt); err != nil {
			log.Fatalf("Failed to seed question for day %d: %v", q.Day, err)
		}
		fmt.Printf("День %d: загадка записана\n", q.Day)
	}

	if err := tx.Commit(); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Success! %d загадок загружено.\n", len(questions))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
