package listings

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kiran/bookbazaar/pkg/api"
	"github.com/kiran/bookbazaar/pkg/images"
	"github.com/kiran/bookbazaar/pkg/mapping"
	"github.com/kiran/bookbazaar/pkg/models"
	"github.com/kiran/bookbazaar/pkg/storage"
)

// maxUploadBytes caps the multipart form we are willing to buffer.
const maxUploadBytes = 10 << 20

// ListingsHandler holds the dependencies for listing-related handlers.
type ListingsHandler struct {
	Store    storage.ListingStore
	Uploader images.Uploader
}

// NewListingsHandler creates a new ListingsHandler.
func NewListingsHandler(store storage.ListingStore, uploader images.Uploader) *ListingsHandler {
	return &ListingsHandler{Store: store, Uploader: uploader}
}

// SubmitListing handles a seller submitting a new book. The request is
// multipart: a "payload" part carrying the listing JSON and an optional
// "cover" part carrying the image. The cover is compressed and uploaded
// before anything is written; an upload failure aborts the submission.
func (h *ListingsHandler) SubmitListing(w http.ResponseWriter, r *http.Request) {
	sellerID := chi.URLParam(r, "userId")

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, fmt.Sprintf("Invalid multipart request: %v", err), http.StatusBadRequest)
		return
	}

	var newListing api.NewListing
	if err := json.Unmarshal([]byte(r.FormValue("payload")), &newListing); err != nil {
		http.Error(w, fmt.Sprintf("Invalid listing payload: %v", err), http.StatusBadRequest)
		return
	}

	if err := newListing.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	book := mapping.ToDomainBook(&newListing, sellerID)

	if file, _, err := r.FormFile("cover"); err == nil {
		defer file.Close()
		data, err := io.ReadAll(file)
		if err != nil {
			http.Error(w, fmt.Sprintf("Failed to read cover: %v", err), http.StatusBadRequest)
			return
		}

		compressed, err := images.CompressCover(data)
		if err != nil {
			http.Error(w, fmt.Sprintf("Invalid cover image: %v", err), http.StatusBadRequest)
			return
		}

		url, err := h.Uploader.UploadCover(r.Context(), compressed)
		if err != nil {
			log.Printf("ERROR: failed to upload cover: %v", err)
			http.Error(w, "Failed to store cover image", http.StatusInternalServerError)
			return
		}
		// The cover is always the first image on the document.
		book.Images = append([]string{url}, book.Images...)
	}

	createdBook, err := h.Store.SubmitListing(r.Context(), book)
	if err != nil {
		log.Printf("ERROR: failed to submit listing: %v", err)
		http.Error(w, fmt.Sprintf("Failed to submit listing: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(mapping.ToApiBook(createdBook)); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// GetBookById handles retrieving an approved book by its ID.
func (h *ListingsHandler) GetBookById(w http.ResponseWriter, r *http.Request) {
	bookID := chi.URLParam(r, "bookId")

	book, err := h.Store.GetApprovedBook(r.Context(), bookID)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve book: %v", err), http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(mapping.ToApiBook(book)); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// ListBooks handles retrieving the approved catalogue.
func (h *ListingsHandler) ListBooks(w http.ResponseWriter, r *http.Request) {
	books, err := h.Store.ListApprovedBooks(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve books: %v", err), http.StatusInternalServerError)
		return
	}

	h.writeBooks(w, books)
}

// ListPendingBooks handles retrieving listings awaiting moderation.
func (h *ListingsHandler) ListPendingBooks(w http.ResponseWriter, r *http.Request) {
	books, err := h.Store.ListPendingBooks(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve pending books: %v", err), http.StatusInternalServerError)
		return
	}

	h.writeBooks(w, books)
}

func (h *ListingsHandler) writeBooks(w http.ResponseWriter, books []models.Book) {
	apiBooks := make([]*api.Book, len(books))
	for i := range books {
		apiBooks[i] = mapping.ToApiBook(&books[i])
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(apiBooks); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}
