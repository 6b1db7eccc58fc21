package web

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/tcherry92/gameday-channels/controller"
	"github.com/unrolled/render"
)

func healthHandler(render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

func scheduleHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		guildID := chi.URLParam(r, "guildID")

		s, err := ctrl.GetSchedule(r.Context(), guildID)
		if err != nil {
			render.JSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}

		render.JSON(w, http.StatusOK, map[string]any{
			"source": s.Source,
			"weeks":  s.Weeks,
		})
	}
}

func weekHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		guildID := chi.URLParam(r, "guildID")

		week, err := strconv.Atoi(chi.URLParam(r, "week"))
		if err != nil {
			render.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid week"})
			return
		}

		info, err := ctrl.WeekSummary(r.Context(), guildID, week)
		if err != nil {
			if errors.Is(err, controller.ErrBadWeek) {
				render.JSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			} else {
				render.JSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			}
			return
		}

		render.JSON(w, http.StatusOK, map[string]any{
			"week":  info.Week,
			"games": info.Games,
		})
	}
}

func fansHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		guildID := chi.URLParam(r, "guildID")

		fans, err := ctrl.ListAllFans(r.Context(), guildID)
		if err != nil {
			render.JSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}

		render.JSON(w, http.StatusOK, fans)
	}
}
