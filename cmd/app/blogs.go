package main

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/sushihentaime/blognest/internal/blogservice"
)

func (app *application) listBlogsHandler(w http.ResponseWriter, r *http.Request) {
	qs := r.URL.Query()

	page, err := app.readInt(qs, "page", blogservice.DefaultPage)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	limit, err := app.readInt(qs, "limit", blogservice.DefaultLimit)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	filter := blogservice.ListFilter{Category: qs.Get("category"), Page: page, Limit: limit}

	blogs, err := app.blogService.ListBlogs(r.Context(), filter)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"blogs": blogs}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// showBlogHandler adds the caller's liked and bookmarked state when the request is authenticated.
func (app *application) showBlogHandler(w http.ResponseWriter, r *http.Request) {
	blog, err := app.blogService.GetBlogBySlug(r.Context(), app.readStringParam(r, "slug"))
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	data := envelope{"blog": blog}

	user := app.getUserContext(r)
	if !user.IsAnonymous() {
		liked, err := app.engagementService.IsLiked(r.Context(), user.ID, blog.ID)
		if err != nil {
			app.serviceErrorResponse(w, r, err)
			return
		}

		bookmarked, err := app.engagementService.IsBookmarked(r.Context(), user.ID, blog.ID)
		if err != nil {
			app.serviceErrorResponse(w, r, err)
			return
		}

		data["liked"] = liked
		data["bookmarked"] = bookmarked
	}

	err = app.writeJSON(w, http.StatusOK, data, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// createBlogHandler credits the caller as author unless the body names one, as author_id or authorId.
func (app *application) createBlogHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		blogservice.CreateBlogRequest
		CamelAuthorID uuid.NullUUID `json:"authorId"`
	}

	err := app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	if !input.AuthorID.Valid {
		input.AuthorID = input.CamelAuthorID
	}

	user := app.getUserContext(r)
	if !input.AuthorID.Valid {
		input.AuthorID.UUID = user.ID
		input.AuthorID.Valid = true
	}

	blog, err := app.blogService.CreateBlog(r.Context(), user.Email, &input.CreateBlogRequest)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	headers := make(http.Header)
	headers.Set("Location", fmt.Sprintf("/v1/blogs/%s", blog.Slug))

	err = app.writeJSON(w, http.StatusCreated, envelope{"blog": blog}, headers)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) updateBlogHandler(w http.ResponseWriter, r *http.Request) {
	var input blogservice.UpdateBlogRequest

	err := app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	user := app.getUserContext(r)

	blog, err := app.blogService.UpdateBlog(r.Context(), user.Email, app.readStringParam(r, "slug"), &input)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"blog": blog}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) deleteBlogHandler(w http.ResponseWriter, r *http.Request) {
	user := app.getUserContext(r)

	err := app.blogService.DeleteBlog(r.Context(), user.Email, app.readStringParam(r, "slug"))
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"message": "blog successfully deleted"}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) relatedBlogsHandler(w http.ResponseWriter, r *http.Request) {
	limit, err := app.readInt(r.URL.Query(), "limit", blogservice.DefaultRelatedLimit)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	blogs, err := app.blogService.RelatedBlogs(r.Context(), app.readStringParam(r, "slug"), limit)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"blogs": blogs}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) listCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	categories, err := app.blogService.ListCategories(r.Context())
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"categories": categories}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) sitemapHandler(w http.ResponseWriter, r *http.Request) {
	entries, err := app.blogService.SitemapEntries(r.Context())
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"sitemap": entries}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) adminStatsHandler(w http.ResponseWriter, r *http.Request) {
	user := app.getUserContext(r)

	stats, err := app.blogService.Stats(r.Context(), user.Email)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"stats": stats}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
