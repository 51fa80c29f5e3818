// Comando de desarrollo: carga el catálogo de departamentos y unos empleados
// de muestra con credenciales bcrypt. Idempotente vía ON CONFLICT DO NOTHING.
package main

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/employees-api/internal/domain/entity"
	"github.com/jhoicas/employees-api/internal/infrastructure/postgres"
	"github.com/jhoicas/employees-api/pkg/config"
	"github.com/jhoicas/employees-api/pkg/logger"
)

type seedEmployee struct {
	empNo    int
	birth    string
	first    string
	last     string
	gender   string
	hire     string
	dept     string
	title    string
	salary   int
	email    string
	password string
}

var departments = map[string]string{
	"d001": "Marketing",
	"d002": "Finance",
	"d003": "Human Resources",
	"d004": "Production",
	"d005": "Development",
	"d006": "Quality Management",
	"d007": "Sales",
	"d008": "Research",
	"d009": "Customer Service",
}

var employees = []seedEmployee{
	{10001, "1990-05-10", "Mary", "Reyes", "F", "2020-01-15", "d005", "Senior Engineer", 72000, "mary.reyes@empresa.com", "123456"},
	{10002, "1985-11-02", "Jorge", "Castro", "M", "2018-06-01", "d007", "Sales Manager", 65000, "jorge.castro@empresa.com", "123456"},
	{10003, "1992-03-22", "Lucia", "Mendez", "F", "2021-09-13", "d003", "HR Analyst", 48000, "lucia.mendez@empresa.com", "123456"},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	for no, name := range departments {
		if _, err := pool.Exec(ctx,
			`INSERT INTO departments (dept_no, dept_name) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			no, name,
		); err != nil {
			log.Fatal().Err(err).Str("dept_no", no).Msg("insertar departamento")
		}
	}

	for _, e := range employees {
		if _, err := pool.Exec(ctx,
			`INSERT INTO employees (emp_no, birth_date, first_name, last_name, gender, hire_date)
			 VALUES ($1, $2, $3, $4, $5, $6) ON CONFLICT DO NOTHING`,
			e.empNo, e.birth, e.first, e.last, e.gender, e.hire,
		); err != nil {
			log.Fatal().Err(err).Int("emp_no", e.empNo).Msg("insertar empleado")
		}
		if _, err := pool.Exec(ctx,
			`INSERT INTO salaries (emp_no, salary, from_date, to_date)
			 VALUES ($1, $2, $3, $4) ON CONFLICT DO NOTHING`,
			e.empNo, e.salary, e.hire, entity.SentinelEndDate,
		); err != nil {
			log.Fatal().Err(err).Int("emp_no", e.empNo).Msg("insertar salario")
		}
		if _, err := pool.Exec(ctx,
			`INSERT INTO titles (emp_no, title, from_date, to_date)
			 VALUES ($1, $2, $3, $4) ON CONFLICT DO NOTHING`,
			e.empNo, e.title, e.hire, entity.SentinelEndDate,
		); err != nil {
			log.Fatal().Err(err).Int("emp_no", e.empNo).Msg("insertar título")
		}
		if _, err := pool.Exec(ctx,
			`INSERT INTO dept_emp (emp_no, dept_no, from_date, to_date)
			 VALUES ($1, $2, $3, $4) ON CONFLICT DO NOTHING`,
			e.empNo, e.dept, e.hire, entity.SentinelEndDate,
		); err != nil {
			log.Fatal().Err(err).Int("emp_no", e.empNo).Msg("insertar dept_emp")
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(e.password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal().Err(err).Msg("hash de password")
		}
		if _, err := pool.Exec(ctx,
			`INSERT INTO employee_auth (emp_no, email, password_hash, access)
			 VALUES ($1, $2, $3, 'Y') ON CONFLICT DO NOTHING`,
			e.empNo, e.email, string(hash),
		); err != nil {
			log.Fatal().Err(err).Int("emp_no", e.empNo).Msg("insertar credencial")
		}
	}

	log.Info().Int("employees", len(employees)).Int("departments", len(departments)).Msg("seed completado")
}
