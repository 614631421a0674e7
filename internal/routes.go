package internal

import (
	"net/http"

	"sbd/internal/controllers"
	"sbd/internal/providers"
)

func InitRoutes(blogController *controllers.BlogController, adminController *controllers.AdminController) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Get("/feed", http.HandlerFunc(blogController.GetFeed))
	routers.Get("/post", http.HandlerFunc(blogController.GetPost))
	routers.Get("/categories", http.HandlerFunc(blogController.GetCategories))
	routers.Post("/like", http.HandlerFunc(blogController.ToggleLike))
	routers.Post("/star", http.HandlerFunc(blogController.ToggleStar))
	routers.Post("/comment", http.HandlerFunc(blogController.AddComment))
	routers.Post("/visit", http.HandlerFunc(blogController.RecordVisit))

	routers.Get("/admin/posts", http.HandlerFunc(adminController.ListUserPosts))
	routers.Post("/admin/publish", http.HandlerFunc(adminController.Publish))
	routers.Post("/admin/delete", http.HandlerFunc(adminController.DeletePost))
	routers.Get("/admin/drafts", http.HandlerFunc(adminController.ListDrafts))
	routers.Get("/admin/draft", http.HandlerFunc(adminController.GetDraft))
	routers.Post("/admin/draft", http.HandlerFunc(adminController.SaveDraft))
	routers.Post("/admin/draft/update", http.HandlerFunc(adminController.UpdateDraft))
	routers.Post("/admin/draft/delete", http.HandlerFunc(adminController.DeleteDraft))
	routers.Get("/admin/analytics", http.HandlerFunc(adminController.Analytics))
	return routers
}
