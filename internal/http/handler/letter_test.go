package handler_test

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"mindhaven.app/server/internal/http/dto"
	"mindhaven.app/server/internal/http/handler"
	"mindhaven.app/server/internal/model"
	"mindhaven.app/server/internal/service"
	"mindhaven.app/server/internal/store"
)

var _ = Describe("LetterHandler", func() {
	var (
		board  *mockBoard
		router *gin.Engine
	)

	BeforeEach(func() {
		board = &mockBoard{}
		h := handler.NewLetterHandler(board)
		router = gin.New()
		router.POST("/letters", h.Submit)
		router.GET("/letters", h.Fetch)
		router.GET("/letters/recent", h.Recent)
		router.POST("/letters/:id/like", h.Like)
		router.POST("/letters/:id/reply", h.Reply)
		router.DELETE("/letters/:id", h.Delete)
	})

	Describe("Submit", func() {
		It("returns 201 with the stored letter", func() {
			board.submitFn = func(_ context.Context, content, username string) (*model.Letter, error) {
				return &model.Letter{
					ID:        42,
					Content:   content,
					Username:  username,
					Replies:   []model.Reply{},
					Timestamp: time.Now(),
				}, nil
			}

			w := doJSON(router, http.MethodPost, "/letters",
				gin.H{"content": "hello board", "username": "alice"})
			Expect(w.Code).To(Equal(http.StatusCreated))

			var resp struct {
				Message string             `json:"message"`
				Letter  dto.LetterResponse `json:"letter"`
			}
			decodeBody(w, &resp)
			Expect(resp.Message).NotTo(BeEmpty())
			Expect(resp.Letter.ID).To(Equal("42"))
			Expect(resp.Letter.Content).To(Equal("hello board"))
			Expect(resp.Letter.Likes).To(BeZero())
		})

		It("returns 400 when fields are missing", func() {
			w := doJSON(router, http.MethodPost, "/letters", gin.H{"content": "no username"})
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("returns 422 when moderation blocks the letter", func() {
			board.submitFn = func(context.Context, string, string) (*model.Letter, error) {
				return nil, service.ErrModerationBlocked
			}
			w := doJSON(router, http.MethodPost, "/letters",
				gin.H{"content": "abusive", "username": "alice"})
			Expect(w.Code).To(Equal(http.StatusUnprocessableEntity))
		})

		It("returns 500 on store failure", func() {
			board.submitFn = func(context.Context, string, string) (*model.Letter, error) {
				return nil, errors.New("db down")
			}
			w := doJSON(router, http.MethodPost, "/letters",
				gin.H{"content": "hello", "username": "alice"})
			Expect(w.Code).To(Equal(http.StatusInternalServerError))
			Expect(w.Body.String()).NotTo(ContainSubstring("db down"))
		})
	})

	Describe("Fetch", func() {
		It("passes pagination and sort through to the service", func() {
			var gotSort string
			var gotPage, gotSize int
			board.listFn = func(_ context.Context, sort string, page, pageSize int) ([]model.Letter, error) {
				gotSort, gotPage, gotSize = sort, page, pageSize
				return []model.Letter{}, nil
			}

			w := doGet(router, "/letters?sort=popular&page=3&limit=20")
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(gotSort).To(Equal("popular"))
			Expect(gotPage).To(Equal(3))
			Expect(gotSize).To(Equal(20))
		})

		It("returns the letters as JSON", func() {
			board.listFn = func(context.Context, string, int, int) ([]model.Letter, error) {
				return []model.Letter{{ID: 1, Content: "a", Username: "alice"}}, nil
			}

			w := doGet(router, "/letters")
			Expect(w.Code).To(Equal(http.StatusOK))

			var resp []dto.LetterResponse
			decodeBody(w, &resp)
			Expect(resp).To(HaveLen(1))
			Expect(resp[0].ID).To(Equal("1"))
		})
	})

	Describe("Recent", func() {
		It("returns the recent feed", func() {
			board.recentFn = func(context.Context) ([]model.Letter, error) {
				return []model.Letter{{ID: 5}, {ID: 4}}, nil
			}
			w := doGet(router, "/letters/recent")
			Expect(w.Code).To(Equal(http.StatusOK))

			var resp []dto.LetterResponse
			decodeBody(w, &resp)
			Expect(resp).To(HaveLen(2))
		})
	})

	Describe("Like", func() {
		It("returns the new count", func() {
			board.likeFn = func(_ context.Context, letterID int64) (int, error) {
				Expect(letterID).To(Equal(int64(7)))
				return 3, nil
			}
			w := doJSON(router, http.MethodPost, "/letters/7/like", nil)
			Expect(w.Code).To(Equal(http.StatusOK))

			var resp dto.LikeResponse
			decodeBody(w, &resp)
			Expect(resp.NewLikes).To(Equal(3))
		})

		It("returns 404 for a missing letter", func() {
			board.likeFn = func(context.Context, int64) (int, error) {
				return 0, store.ErrNotFound
			}
			w := doJSON(router, http.MethodPost, "/letters/7/like", nil)
			Expect(w.Code).To(Equal(http.StatusNotFound))
		})

		It("returns 400 for a malformed id", func() {
			w := doJSON(router, http.MethodPost, "/letters/abc/like", nil)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("Reply", func() {
		It("accepts the reply text under either body key", func() {
			var gotContent string
			board.replyFn = func(_ context.Context, _ int64, content, _ string) error {
				gotContent = content
				return nil
			}

			w := doJSON(router, http.MethodPost, "/letters/7/reply",
				gin.H{"replyContent": "stay strong", "username": "bob"})
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(gotContent).To(Equal("stay strong"))

			w = doJSON(router, http.MethodPost, "/letters/7/reply",
				gin.H{"content": "older client", "username": "bob"})
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(gotContent).To(Equal("older client"))
		})

		It("returns 404 for a missing letter", func() {
			board.replyFn = func(context.Context, int64, string, string) error {
				return store.ErrNotFound
			}
			w := doJSON(router, http.MethodPost, "/letters/7/reply",
				gin.H{"content": "hello", "username": "bob"})
			Expect(w.Code).To(Equal(http.StatusNotFound))
		})
	})

	Describe("Delete", func() {
		It("returns 200 when the author deletes", func() {
			board.deleteFn = func(_ context.Context, letterID int64, username string) error {
				Expect(letterID).To(Equal(int64(7)))
				Expect(username).To(Equal("alice"))
				return nil
			}
			w := doJSON(router, http.MethodDelete, "/letters/7", gin.H{"username": "alice"})
			Expect(w.Code).To(Equal(http.StatusOK))
		})

		It("returns 403 for a non-author", func() {
			board.deleteFn = func(context.Context, int64, string) error {
				return service.ErrForbidden
			}
			w := doJSON(router, http.MethodDelete, "/letters/7", gin.H{"username": "bob"})
			Expect(w.Code).To(Equal(http.StatusForbidden))
		})

		It("returns 400 without a username", func() {
			w := doJSON(router, http.MethodDelete, "/letters/7", gin.H{})
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})
})
