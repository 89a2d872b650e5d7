// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"arcana/internal/models"
	"arcana/internal/repository"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// Options configures the seeder.
type Options struct {
	NumUsers    int
	NumPosts    int
	ShouldClean bool
}

var (
	readingQuestions = []string{
		"올해 이직해도 될까요?",
		"짝사랑하는 사람과 잘 될 수 있을까요?",
		"이번 시험 결과가 어떻게 나올까요?",
		"새로 시작한 사업이 잘 풀릴까요?",
		"지금 만나는 사람과의 관계가 궁금해요",
		"올해 재물운은 어떤가요?",
	}

	spreadNames = []string{"one-card", "three-card", "celtic-cross"}

	postTitles = map[string][]string{
		models.CategoryFreeDiscussion: {
			"오늘 처음 타로 배웠어요", "다들 어떤 덱 쓰세요?", "타로 공부 순서 추천해주세요",
		},
		models.CategoryReadingShare: {
			"연애운 리딩 공유합니다", "이직 관련 쓰리카드 결과", "오늘의 원카드",
		},
		models.CategoryQAndA: {
			"역방향 해석이 너무 어려워요", "같은 카드가 계속 나오면 어떤 의미인가요?",
		},
		models.CategoryDeckReview: {
			"라이더 웨이트 덱 후기", "마르세유 덱 써보신 분?",
		},
		models.CategoryStudyGroup: {
			"주말 타로 스터디 모집합니다", "온라인 스터디 같이 하실 분",
		},
	}
)

// Seed populates the database with test data. Comment counts are kept
// consistent by writing comments through the repository layer.
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("Starting database seeding with %d users and %d posts...", opts.NumUsers, opts.NumPosts)
	gofakeit.Seed(time.Now().UnixNano())

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("warning: could not clear all existing data, continuing anyway")
		}
	}

	users := makeUsers(opts.NumUsers)
	log.Printf("using %d synthetic users", len(users))

	posts, err := createPosts(db, users, opts.NumPosts)
	if err != nil {
		return fmt.Errorf("failed to create posts: %w", err)
	}
	log.Printf("created %d posts", len(posts))

	if err := createComments(db, users, posts); err != nil {
		return fmt.Errorf("failed to create comments: %w", err)
	}

	if err := createReadings(db, users); err != nil {
		return fmt.Errorf("failed to create readings: %w", err)
	}

	log.Println("seeding complete")
	return nil
}

func clearData(db *gorm.DB) error {
	for _, table := range []string{"comments", "posts", "saved_readings"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return err
		}
	}
	return nil
}

func makeUsers(n int) []models.Caller {
	if n <= 0 {
		n = 10
	}
	users := make([]models.Caller, 0, n)
	for i := 0; i < n; i++ {
		users = append(users, models.Caller{
			ID:          gofakeit.UUID(),
			DisplayName: gofakeit.Username(),
			PhotoURL:    fmt.Sprintf("https://picsum.photos/seed/%s/128/128", gofakeit.UUID()),
		})
	}
	return users
}

func createPosts(db *gorm.DB, users []models.Caller, n int) ([]*models.Post, error) {
	ctx := context.Background()
	posts := repository.NewPostRepository(db)
	if n <= 0 {
		n = 40
	}

	categories := []string{
		models.CategoryFreeDiscussion,
		models.CategoryReadingShare,
		models.CategoryQAndA,
		models.CategoryDeckReview,
		models.CategoryStudyGroup,
	}

	created := make([]*models.Post, 0, n)
	for i := 0; i < n; i++ {
		author := users[rand.Intn(len(users))]
		category := categories[rand.Intn(len(categories))]
		titles := postTitles[category]

		post := &models.Post{
			AuthorID:       author.ID,
			AuthorName:     author.Name(),
			AuthorPhotoURL: author.PhotoURL,
			Title:          titles[rand.Intn(len(titles))],
			Content:        gofakeit.Paragraph(1, 3, 8, "\n"),
			Category:       category,
		}
		if category == models.CategoryReadingShare {
			post.ReadingQuestion = readingQuestions[rand.Intn(len(readingQuestions))]
			post.CardsInfo = "광대 (정방향), 탑 (역방향), 세계 (정방향)"
		}
		if err := posts.Create(ctx, post); err != nil {
			return nil, err
		}
		// spread created_at so pagination pages look realistic
		age := time.Duration(rand.Intn(90*24)) * time.Hour
		if err := db.Model(post).UpdateColumn("created_at", time.Now().Add(-age)).Error; err != nil {
			log.Printf("Warning: failed to backdate post %s: %v", post.ID, err)
		}
		created = append(created, post)
	}
	return created, nil
}

func createComments(db *gorm.DB, users []models.Caller, posts []*models.Post) error {
	ctx := context.Background()
	comments := repository.NewCommentRepository(db)

	for _, post := range posts {
		for i := 0; i < rand.Intn(5); i++ {
			author := users[rand.Intn(len(users))]
			comment := &models.Comment{
				PostID:         post.ID,
				AuthorID:       author.ID,
				AuthorName:     author.Name(),
				AuthorPhotoURL: author.PhotoURL,
				Content:        gofakeit.Sentence(8),
			}
			if err := comments.Create(ctx, comment); err != nil {
				return err
			}
		}
	}
	return nil
}

func createReadings(db *gorm.DB, users []models.Caller) error {
	ctx := context.Background()
	readings := repository.NewReadingRepository(db)

	for _, user := range users {
		for i := 0; i < rand.Intn(4); i++ {
			reading := &models.SavedReading{
				UserID:         user.ID,
				Question:       readingQuestions[rand.Intn(len(readingQuestions))],
				SpreadName:     spreadNames[rand.Intn(len(spreadNames))],
				SpreadNumCards: 3,
				DrawnCards: models.DrawnCards{
					{CardID: fmt.Sprintf("major-%d", rand.Intn(22)), Position: "past"},
					{CardID: fmt.Sprintf("major-%d", rand.Intn(22)), IsReversed: rand.Intn(2) == 0, Position: "present"},
					{CardID: fmt.Sprintf("major-%d", rand.Intn(22)), Position: "future"},
				},
				Interpretation: gofakeit.Paragraph(1, 2, 10, " "),
			}
			if err := readings.Create(ctx, reading); err != nil {
				return err
			}
		}
	}
	return nil
}
