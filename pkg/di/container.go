// pkg/di/container.go
package di

import (
	"log"

	"github.com/go-redis/redis/v8"
	"github.com/liuxinyuan2000/nebula-api/application/serviceimpl"
	"github.com/liuxinyuan2000/nebula-api/domain/port"
	"github.com/liuxinyuan2000/nebula-api/domain/repository"
	"github.com/liuxinyuan2000/nebula-api/domain/service"
	"github.com/liuxinyuan2000/nebula-api/infrastructure/persistence/postgres"
	"github.com/liuxinyuan2000/nebula-api/interfaces/api/handler"
	"github.com/liuxinyuan2000/nebula-api/pkg/scheduler"

	"gorm.io/gorm"
)

// Container เก็บ dependencies ทั้งหมดของแอปพลิเคชัน
type Container struct {
	// Repositories
	UserRepo        repository.UserRepository
	NoteRepo        repository.NoteRepository
	CategoryRepo    repository.CategoryRepository
	FriendshipRepo  repository.FriendshipRepository
	ChatSessionRepo repository.ChatSessionRepository
	ChatMessageRepo repository.ChatMessageRepository
	StatusLikeRepo  repository.StatusLikeRepository
	OutingThemeRepo repository.OutingThemeRepository

	// External ports
	CompletionClient port.ChatCompletionPort
	GeocodingClient  port.GeocodingPort

	// Services
	AuthService        service.AuthService
	UserService        service.UserService
	NoteService        service.NoteService
	CategoryService    service.CategoryService
	FriendshipService  service.FriendshipService
	ChatService        service.ChatService
	StatusLikeService  service.StatusLikeService
	OutingThemeService service.OutingThemeService
	TopicService       service.TopicService

	// Handlers
	AuthHandler        *handler.AuthHandler
	UserHandler        *handler.UserHandler
	NoteHandler        *handler.NoteHandler
	CategoryHandler    *handler.CategoryHandler
	FriendshipHandler  *handler.FriendshipHandler
	ChatHandler        *handler.ChatHandler
	StatusLikeHandler  *handler.StatusLikeHandler
	OutingThemeHandler *handler.OutingThemeHandler
	TopicHandler       *handler.TopicHandler

	// Scheduler & Background Jobs
	RedisClient          *redis.Client
	ThemeExpiryProcessor *scheduler.ThemeExpiryProcessor
}

// NewContainer สร้าง container ใหม่พร้อมกับ dependencies ทั้งหมด
func NewContainer(
	db *gorm.DB,
	completionClient port.ChatCompletionPort,
	geocodingClient port.GeocodingPort,
	redisClient *redis.Client,
) (*Container, error) {
	container := &Container{
		CompletionClient: completionClient,
		GeocodingClient:  geocodingClient,
		RedisClient:      redisClient,
	}

	// สร้าง repositories
	container.UserRepo = postgres.NewUserRepository(db)
	container.NoteRepo = postgres.NewNoteRepository(db)
	container.CategoryRepo = postgres.NewCategoryRepository(db)
	container.FriendshipRepo = postgres.NewFriendshipRepository(db)
	container.ChatSessionRepo = postgres.NewChatSessionRepository(db)
	container.ChatMessageRepo = postgres.NewChatMessageRepository(db)
	container.StatusLikeRepo = postgres.NewStatusLikeRepository(db)
	container.OutingThemeRepo = postgres.NewOutingThemeRepository(db)

	// สร้าง services
	container.AuthService = serviceimpl.NewAuthService(container.UserRepo)
	container.UserService = serviceimpl.NewUserService(container.UserRepo)
	container.FriendshipService = serviceimpl.NewFriendshipService(
		container.FriendshipRepo,
		container.UserRepo,
	)
	container.CategoryService = serviceimpl.NewCategoryService(
		container.CategoryRepo,
		container.NoteRepo,
		container.FriendshipService,
	)
	container.NoteService = serviceimpl.NewNoteService(
		container.NoteRepo,
		container.CategoryRepo,
	)
	container.ChatService = serviceimpl.NewChatService(
		container.ChatSessionRepo,
		container.ChatMessageRepo,
		container.CategoryRepo,
	)
	container.StatusLikeService = serviceimpl.NewStatusLikeService(
		container.StatusLikeRepo,
		container.UserRepo,
	)
	container.OutingThemeService = serviceimpl.NewOutingThemeService(container.OutingThemeRepo)
	container.TopicService = serviceimpl.NewTopicService(
		container.NoteRepo,
		container.UserRepo,
		container.FriendshipService,
		container.OutingThemeService,
		container.CompletionClient,
		container.GeocodingClient,
		container.RedisClient,
	)

	log.Println("Services initialized successfully")

	// สร้าง background processor สำหรับธีมหมดอายุ (ก่อน handlers เพราะ handler ใช้ลงทะเบียน timer)
	container.ThemeExpiryProcessor = scheduler.NewThemeExpiryProcessor(container.OutingThemeService)

	// สร้าง handlers
	container.AuthHandler = handler.NewAuthHandler(container.AuthService)
	container.UserHandler = handler.NewUserHandler(container.UserService, container.FriendshipService)
	container.NoteHandler = handler.NewNoteHandler(container.NoteService)
	container.CategoryHandler = handler.NewCategoryHandler(container.CategoryService)
	container.FriendshipHandler = handler.NewFriendshipHandler(
		container.FriendshipService,
		container.CategoryService,
	)
	container.ChatHandler = handler.NewChatHandler(container.ChatService)
	container.StatusLikeHandler = handler.NewStatusLikeHandler(container.StatusLikeService)
	container.OutingThemeHandler = handler.NewOutingThemeHandler(
		container.OutingThemeService,
		container.ThemeExpiryProcessor,
	)
	container.TopicHandler = handler.NewTopicHandler(container.TopicService)

	return container, nil
}
