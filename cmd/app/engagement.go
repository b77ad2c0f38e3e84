package main

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sushihentaime/blognest/internal/engagementservice"
)

// toggleRequest accepts both user_id/blog_id and userId/blogId.
type toggleRequest struct {
	UserID      uuid.UUID `json:"user_id"`
	BlogID      uuid.UUID `json:"blog_id"`
	CamelUserID uuid.UUID `json:"userId"`
	CamelBlogID uuid.UUID `json:"blogId"`
}

// firstID returns the first non-nil id.
func firstID(ids ...uuid.UUID) uuid.UUID {
	for _, id := range ids {
		if id != uuid.Nil {
			return id
		}
	}

	return uuid.Nil
}

// parseToggle reads a toggle body. The user id is optional and, when sent, must be the caller.
func (app *application) parseToggle(w http.ResponseWriter, r *http.Request) (uuid.UUID, uuid.UUID, bool) {
	var input toggleRequest

	err := app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return uuid.Nil, uuid.Nil, false
	}

	input.UserID = firstID(input.UserID, input.CamelUserID)
	input.BlogID = firstID(input.BlogID, input.CamelBlogID)

	user := app.getUserContext(r)
	if input.UserID != uuid.Nil && input.UserID != user.ID {
		app.forbiddenResponse(w, r)
		return uuid.Nil, uuid.Nil, false
	}

	return user.ID, input.BlogID, true
}

func (app *application) toggleLikeHandler(w http.ResponseWriter, r *http.Request) {
	userID, blogID, ok := app.parseToggle(w, r)
	if !ok {
		return
	}

	liked, err := app.engagementService.ToggleLike(r.Context(), userID, blogID)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"liked": liked}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) toggleBookmarkHandler(w http.ResponseWriter, r *http.Request) {
	userID, blogID, ok := app.parseToggle(w, r)
	if !ok {
		return
	}

	bookmarked, err := app.engagementService.ToggleBookmark(r.Context(), userID, blogID)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"bookmarked": bookmarked}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) listCommentsHandler(w http.ResponseWriter, r *http.Request) {
	blogID, err := uuid.Parse(r.URL.Query().Get("blogId"))
	if err != nil {
		app.badRequestErrorResponse(w, r, errors.New("invalid blogId parameter"))
		return
	}

	comments, err := app.engagementService.ListComments(r.Context(), blogID)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"comments": comments}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) showCommentHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readUUIDParam(r, "id")
	if err != nil {
		app.notFoundErrorResponse(w, r)
		return
	}

	comment, err := app.engagementService.GetComment(r.Context(), id)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"comment": comment}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

type createCommentRequest struct {
	BlogID      uuid.UUID `json:"blog_id"`
	CamelBlogID uuid.UUID `json:"blogId"`
	Content     string    `json:"content"`
}

func (app *application) createCommentHandler(w http.ResponseWriter, r *http.Request) {
	var input createCommentRequest

	err := app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	user := app.getUserContext(r)

	comment, err := app.engagementService.CreateComment(r.Context(), firstID(input.BlogID, input.CamelBlogID), user.ID, input.Content)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, envelope{"comment": comment}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// ownComment loads the comment in the id parameter and checks that the caller wrote it or is the admin.
func (app *application) ownComment(w http.ResponseWriter, r *http.Request) (*engagementservice.Comment, bool) {
	id, err := app.readUUIDParam(r, "id")
	if err != nil {
		app.notFoundErrorResponse(w, r)
		return nil, false
	}

	comment, err := app.engagementService.GetComment(r.Context(), id)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return nil, false
	}

	user := app.getUserContext(r)
	if comment.UserID != user.ID && !app.policy.Authorize(user.Email) {
		app.forbiddenResponse(w, r)
		return nil, false
	}

	return comment, true
}

type updateCommentRequest struct {
	Content string `json:"content"`
}

func (app *application) updateCommentHandler(w http.ResponseWriter, r *http.Request) {
	comment, ok := app.ownComment(w, r)
	if !ok {
		return
	}

	var input updateCommentRequest

	err := app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	updated, err := app.engagementService.UpdateComment(r.Context(), comment.ID, input.Content)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"comment": updated}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) deleteCommentHandler(w http.ResponseWriter, r *http.Request) {
	comment, ok := app.ownComment(w, r)
	if !ok {
		return
	}

	err := app.engagementService.DeleteComment(r.Context(), comment.ID)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"message": "comment successfully deleted"}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
