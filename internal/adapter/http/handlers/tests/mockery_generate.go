package tests

// The hand-written mocks in mocks_test.go follow the mockery layout and can
// be regenerated with:
//   go generate ./internal/adapter/http/handlers/tests
//
//go:generate mockery --name ListService --dir ../../../../core/ports --output ./mocks --outpkg mocks --filename list_service_mock.go --with-expecter
//go:generate mockery --name TaskService --dir ../../../../core/ports --output ./mocks --outpkg mocks --filename task_service_mock.go --with-expecter
