package http

import (
	"net/http"

	"github.com/MKhiriev/finance-flow/internal/app"
)

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request, _ input) {
	categories, err := h.services.CategoryService.Categories(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeSuccess(w, r, http.StatusOK, app.MsgCategoriesRetrieved, map[string]any{"categories": categories})
}

func (h *Handler) listSubcategories(w http.ResponseWriter, r *http.Request, _ input) {
	subcategories, err := h.services.CategoryService.Subcategories(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeSuccess(w, r, http.StatusOK, app.MsgSubcategoriesRetrieved, map[string]any{"subcategories": subcategories})
}

func (h *Handler) listCategorySubcategories(w http.ResponseWriter, r *http.Request, in input) {
	categoryID, err := in.paramID(0)
	if err != nil {
		// an id that overflows int64 matches no category
		h.writeSuccess(w, r, http.StatusOK, app.MsgSubcategoriesRetrieved, map[string]any{"subcategories": []any{}})
		return
	}

	subcategories, err := h.services.CategoryService.SubcategoriesByCategory(r.Context(), categoryID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeSuccess(w, r, http.StatusOK, app.MsgSubcategoriesRetrieved, map[string]any{"subcategories": subcategories})
}
