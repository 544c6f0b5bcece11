package swagger

import (
	"io/fs"
	"log/slog"
	"net/http"
)

// ServeSpec регистрирует маршруты, отдающие OpenAPI документ:
// - GET /openapi.json
// - GET /swagger.json (для совместимости со Swagger UI)
func ServeSpec(mux *http.ServeMux, specs fs.FS, file string) error {
	// Документ читается один раз: embed.FS не меняется во время работы
	spec, err := fs.ReadFile(specs, file)
	if err != nil {
		return err
	}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_, _ = w.Write(spec)
	})
	mux.Handle("GET /openapi.json", handler)
	mux.Handle("GET /swagger.json", handler)

	slog.Info("OpenAPI document available", "paths", []string{"/openapi.json", "/swagger.json"})
	return nil
}
