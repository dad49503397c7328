package app

import (
	"fmt"

	tokenparserHTTP "github.com/allisson/tokenparser/internal/tokenparser/http"
	tokenparserService "github.com/allisson/tokenparser/internal/tokenparser/service"
	tokenparserUseCase "github.com/allisson/tokenparser/internal/tokenparser/usecase"
)

// DateParser returns the date token engine.
func (c *Container) DateParser() *tokenparserService.DateParser {
	c.dateParserInit.Do(func() {
		c.dateParser = tokenparserService.NewDateParser()
	})
	return c.dateParser
}

// StringGenerator returns the dynamic string engine, backed by crypto/rand unless
// another source was configured.
func (c *Container) StringGenerator() *tokenparserService.StringGenerator {
	c.stringGeneratorInit.Do(func() {
		opts := []tokenparserService.StringGeneratorOption{
			tokenparserService.WithMaxOutputSize(c.config.DynamicStringMaxSize),
		}
		if c.randomSource != nil {
			opts = append(opts, tokenparserService.WithRandomSource(c.randomSource))
		}
		c.stringGenerator = tokenparserService.NewStringGenerator(opts...)
	})
	return c.stringGenerator
}

// TokenParserUseCase returns the token parser use case wrapped with metrics.
func (c *Container) TokenParserUseCase() (tokenparserUseCase.TokenParserUseCase, error) {
	var err error
	c.tokenParserUseCaseInit.Do(func() {
		c.tokenParserUseCase, err = c.initTokenParserUseCase()
		if err != nil {
			c.initErrors["tokenParserUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["tokenParserUseCase"]; exists {
		return nil, storedErr
	}
	return c.tokenParserUseCase, nil
}

// TokenParserHandler returns the HTTP handler of the parse endpoints.
func (c *Container) TokenParserHandler() (*tokenparserHTTP.TokenParserHandler, error) {
	var err error
	c.tokenParserHandlerInit.Do(func() {
		c.tokenParserHandler, err = c.initTokenParserHandler()
		if err != nil {
			c.initErrors["tokenParserHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["tokenParserHandler"]; exists {
		return nil, storedErr
	}
	return c.tokenParserHandler, nil
}

// OpenAPIHandler returns the handler serving the OpenAPI document.
func (c *Container) OpenAPIHandler() (*tokenparserHTTP.OpenAPIHandler, error) {
	var err error
	c.openAPIHandlerInit.Do(func() {
		c.openAPIHandler, err = tokenparserHTTP.NewOpenAPIHandler(c.version)
		if err != nil {
			c.initErrors["openAPIHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["openAPIHandler"]; exists {
		return nil, storedErr
	}
	return c.openAPIHandler, nil
}

func (c *Container) initTokenParserUseCase() (tokenparserUseCase.TokenParserUseCase, error) {
	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for token parser use case: %w", err)
	}

	useCase := tokenparserUseCase.NewTokenParserUseCase(c.DateParser(), c.StringGenerator(), c.Logger())

	return tokenparserUseCase.NewTokenParserUseCaseWithMetrics(useCase, businessMetrics), nil
}

func (c *Container) initTokenParserHandler() (*tokenparserHTTP.TokenParserHandler, error) {
	useCase, err := c.TokenParserUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get token parser use case for handler: %w", err)
	}
	return tokenparserHTTP.NewTokenParserHandler(useCase, c.Logger()), nil
}
