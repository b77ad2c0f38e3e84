package main

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

func (app *application) routes() http.Handler {
	router := httprouter.New()

	router.NotFound = http.HandlerFunc(app.notFoundErrorResponse)
	router.MethodNotAllowed = http.HandlerFunc(app.methodNotAllowedErrorResponse)

	router.HandlerFunc(http.MethodGet, "/v1/healthcheck", app.healthCheckHandler)

	// blog service
	router.HandlerFunc(http.MethodGet, "/v1/blogs", app.listBlogsHandler)
	router.HandlerFunc(http.MethodPost, "/v1/blogs", app.requireAuthUser(app.createBlogHandler))
	router.HandlerFunc(http.MethodGet, "/v1/blogs/:slug", app.showBlogHandler)
	router.HandlerFunc(http.MethodPut, "/v1/blogs/:slug", app.requireAuthUser(app.updateBlogHandler))
	router.HandlerFunc(http.MethodDelete, "/v1/blogs/:slug", app.requireAuthUser(app.deleteBlogHandler))
	router.HandlerFunc(http.MethodGet, "/v1/blogs/:slug/related", app.relatedBlogsHandler)
	router.HandlerFunc(http.MethodGet, "/v1/categories", app.listCategoriesHandler)
	router.HandlerFunc(http.MethodGet, "/v1/sitemap", app.sitemapHandler)
	router.HandlerFunc(http.MethodGet, "/v1/admin/stats", app.requireAuthUser(app.adminStatsHandler))

	// engagement service
	router.HandlerFunc(http.MethodPost, "/v1/likes", app.requireAuthUser(app.toggleLikeHandler))
	router.HandlerFunc(http.MethodPost, "/v1/bookmarks", app.requireAuthUser(app.toggleBookmarkHandler))
	router.HandlerFunc(http.MethodGet, "/v1/comments", app.listCommentsHandler)
	router.HandlerFunc(http.MethodPost, "/v1/comments", app.requireAuthUser(app.createCommentHandler))
	router.HandlerFunc(http.MethodGet, "/v1/comments/:id", app.showCommentHandler)
	router.HandlerFunc(http.MethodPut, "/v1/comments/:id", app.requireAuthUser(app.updateCommentHandler))
	router.HandlerFunc(http.MethodDelete, "/v1/comments/:id", app.requireAuthUser(app.deleteCommentHandler))

	// user service
	router.HandlerFunc(http.MethodPost, "/v1/users/login", app.loginUserHandler)
	router.HandlerFunc(http.MethodPost, "/v1/users/logout", app.requireAuthUser(app.logoutUserHandler))
	router.HandlerFunc(http.MethodGet, "/v1/users/me", app.requireAuthUser(app.showCurrentUserHandler))
	router.HandlerFunc(http.MethodGet, "/v1/users/me/bookmarks", app.requireAuthUser(app.listUserBookmarksHandler))
	router.HandlerFunc(http.MethodGet, "/v1/users/me/likes", app.requireAuthUser(app.listUserLikesHandler))

	router.HandlerFunc(http.MethodPost, "/v1/contact", app.contactHandler)

	return app.recoverPanic(app.enableCORS(app.rateLimit(app.logRequest(app.authenticate(router)))))
}
