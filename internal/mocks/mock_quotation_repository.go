package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen/event-quote-service/internal/domain"
)

// MockQuotationRepository is a mock of ports.QuotationRepository.
type MockQuotationRepository struct {
	mock.Mock
}

// MockQuotationRepository_Expecter records typed expectations.
type MockQuotationRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockQuotationRepository) EXPECT() *MockQuotationRepository_Expecter {
	return &MockQuotationRepository_Expecter{mock: &_m.Mock}
}

// Get provides a mock function with given fields: ctx, id
func (_m *MockQuotationRepository) Get(ctx context.Context, id string) (domain.Quotation, error) {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for Get")
	}

	if rf, ok := ret.Get(0).(func(context.Context, string) (domain.Quotation, error)); ok {
		return rf(ctx, id)
	}

	var r0 domain.Quotation
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(domain.Quotation)
	}

	return r0, ret.Error(1)
}

// MockQuotationRepository_Get_Call wraps mock.Call for Get.
type MockQuotationRepository_Get_Call struct {
	*mock.Call
}

// Get is a helper method to define mock.On call
//   - ctx context.Context
//   - id string
func (_e *MockQuotationRepository_Expecter) Get(ctx any, id any) *MockQuotationRepository_Get_Call {
	return &MockQuotationRepository_Get_Call{Call: _e.mock.On("Get", ctx, id)}
}

func (_c *MockQuotationRepository_Get_Call) Run(run func(ctx context.Context, id string)) *MockQuotationRepository_Get_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})

	return _c
}

func (_c *MockQuotationRepository_Get_Call) Return(_a0 domain.Quotation, _a1 error) *MockQuotationRepository_Get_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockQuotationRepository_Get_Call) RunAndReturn(run func(context.Context, string) (domain.Quotation, error)) *MockQuotationRepository_Get_Call {
	_c.Call.Return(run)
	return _c
}

// List provides a mock function with given fields: ctx
func (_m *MockQuotationRepository) List(ctx context.Context) ([]domain.Quotation, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for List")
	}

	if rf, ok := ret.Get(0).(func(context.Context) ([]domain.Quotation, error)); ok {
		return rf(ctx)
	}

	var r0 []domain.Quotation
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Quotation)
	}

	return r0, ret.Error(1)
}

// MockQuotationRepository_List_Call wraps mock.Call for List.
type MockQuotationRepository_List_Call struct {
	*mock.Call
}

// List is a helper method to define mock.On call
//   - ctx context.Context
func (_e *MockQuotationRepository_Expecter) List(ctx any) *MockQuotationRepository_List_Call {
	return &MockQuotationRepository_List_Call{Call: _e.mock.On("List", ctx)}
}

func (_c *MockQuotationRepository_List_Call) Run(run func(ctx context.Context)) *MockQuotationRepository_List_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})

	return _c
}

func (_c *MockQuotationRepository_List_Call) Return(_a0 []domain.Quotation, _a1 error) *MockQuotationRepository_List_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockQuotationRepository_List_Call) RunAndReturn(run func(context.Context) ([]domain.Quotation, error)) *MockQuotationRepository_List_Call {
	_c.Call.Return(run)
	return _c
}

// Save provides a mock function with given fields: ctx, q
func (_m *MockQuotationRepository) Save(ctx context.Context, q domain.Quotation) error {
	ret := _m.Called(ctx, q)

	if len(ret) == 0 {
		panic("no return value specified for Save")
	}

	if rf, ok := ret.Get(0).(func(context.Context, domain.Quotation) error); ok {
		return rf(ctx, q)
	}

	return ret.Error(0)
}

// MockQuotationRepository_Save_Call wraps mock.Call for Save.
type MockQuotationRepository_Save_Call struct {
	*mock.Call
}

// Save is a helper method to define mock.On call
//   - ctx context.Context
//   - q domain.Quotation
func (_e *MockQuotationRepository_Expecter) Save(ctx any, q any) *MockQuotationRepository_Save_Call {
	return &MockQuotationRepository_Save_Call{Call: _e.mock.On("Save", ctx, q)}
}

func (_c *MockQuotationRepository_Save_Call) Run(run func(ctx context.Context, q domain.Quotation)) *MockQuotationRepository_Save_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(domain.Quotation))
	})

	return _c
}

func (_c *MockQuotationRepository_Save_Call) Return(_a0 error) *MockQuotationRepository_Save_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockQuotationRepository_Save_Call) RunAndReturn(run func(context.Context, domain.Quotation) error) *MockQuotationRepository_Save_Call {
	_c.Call.Return(run)
	return _c
}

// Delete provides a mock function with given fields: ctx, id
func (_m *MockQuotationRepository) Delete(ctx context.Context, id string) error {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for Delete")
	}

	if rf, ok := ret.Get(0).(func(context.Context, string) error); ok {
		return rf(ctx, id)
	}

	return ret.Error(0)
}

// MockQuotationRepository_Delete_Call wraps mock.Call for Delete.
type MockQuotationRepository_Delete_Call struct {
	*mock.Call
}

// Delete is a helper method to define mock.On call
//   - ctx context.Context
//   - id string
func (_e *MockQuotationRepository_Expecter) Delete(ctx any, id any) *MockQuotationRepository_Delete_Call {
	return &MockQuotationRepository_Delete_Call{Call: _e.mock.On("Delete", ctx, id)}
}

func (_c *MockQuotationRepository_Delete_Call) Run(run func(ctx context.Context, id string)) *MockQuotationRepository_Delete_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})

	return _c
}

func (_c *MockQuotationRepository_Delete_Call) Return(_a0 error) *MockQuotationRepository_Delete_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockQuotationRepository_Delete_Call) RunAndReturn(run func(context.Context, string) error) *MockQuotationRepository_Delete_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockQuotationRepository creates a mock and registers a cleanup that
// asserts its expectations.
func NewMockQuotationRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockQuotationRepository {
	m := &MockQuotationRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
